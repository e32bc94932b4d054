package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logitrack/internal/application/dto"
	"github.com/tu-usuario/logitrack/internal/application/usecase"
)

// TransportHandler consultas de mercancía en tránsito (protegido).
type TransportHandler struct {
	uc *usecase.TransportUseCase
}

// NewTransportHandler construye el handler.
func NewTransportHandler(uc *usecase.TransportUseCase) *TransportHandler {
	return &TransportHandler{uc: uc}
}

// List godoc
// @Summary      Listar rutas con mercancía registrada
// @Tags         transports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransportListResponse
// @Router       /api/transports [get]
func (h *TransportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByRoute godoc
// @Summary      Obtener el manifiesto de una ruta
// @Tags         transports
// @Security     Bearer
// @Produce      json
// @Param        route  path  string  true  "Clave de la ruta (bodega-destino)"
// @Success      200    {object}  dto.TransportResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/transports/{route} [get]
func (h *TransportHandler) GetByRoute(c *fiber.Ctx) error {
	route := c.Params("route")
	if route == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "route es requerido"})
	}
	out, err := h.uc.GetByRoute(route)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	}
	return c.JSON(out)
}
