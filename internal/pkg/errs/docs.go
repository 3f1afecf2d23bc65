// Package errs provides the typed errors shared by the sales delivery service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying details.
// The structs unwrap to their sentinel, so callers classify failures with
// errors.Is and read details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
//
// Constructors come in two flavours, with and without a cause. The cause is
// rendered into the message but is not part of the unwrap chain.
package errs
