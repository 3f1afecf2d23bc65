package http

import (
	"errors"
	"net/http"

	"salesdelivery/internal/core/application/usecases/commands"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errInvalidRequest = errors.New("invalid request")

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrCarrierIsArchived),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict

	case errors.Is(err, errInvalidRequest),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrReferenceIsRequired),
		errors.Is(err, commands.ErrProductNameIsRequired),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrPriceUnitIsNegative),
		errors.Is(err, commands.ErrCarrierNameIsRequired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Internal errors are logged and
// hidden from the client.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		message = "internal server error"
	}

	return c.JSON(status, Error{Code: status, Message: message})
}
