package http

import (
	"fmt"

	"salesdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RegisterRoutes mounts the operations of api/openapi.yaml on g.
func RegisterRoutes(g *echo.Group, s *Server) {
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:order_id", s.GetOrder)
	g.POST("/orders/:order_id/lines", s.AddOrderLine)
	g.POST("/orders/:order_id/confirm", s.ConfirmOrder)
	g.POST("/orders/:order_id/lock", s.LockOrder)
	g.POST("/orders/:order_id/cancel", s.CancelOrder)
	g.POST("/orders/:order_id/delivery-line", s.SetDeliveryLine)
	g.GET("/carriers", s.GetCarriers)
	g.POST("/carriers", s.CreateCarrier)
	g.POST("/carriers/:carrier_id/archive", s.ArchiveCarrier)
}

// pathUUID binds a uuid path parameter the way the document declares it
// (simple style, required).
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: invalid format for parameter %s: %v", errInvalidRequest, name, err)
	}

	return kernel.UUIDFromString(id.String())
}
