package http

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

const maxBodyBytes = 1 << 20

// bodyValidator checks request bodies against the component schemas of the
// OpenAPI document before decoding them.
type bodyValidator struct {
	schemas openapi3.Schemas
}

func newBodyValidator(doc *openapi3.T) bodyValidator {
	return bodyValidator{schemas: doc.Components.Schemas}
}

// bind validates the body against schemaName and decodes it into dst.
func (v bodyValidator) bind(c echo.Context, schemaName string, dst any) error {
	ref, ok := v.schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("schema %s is not defined", schemaName)
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	var raw any
	if err = json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	if err = ref.Value.VisitJSON(raw, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	return nil
}
