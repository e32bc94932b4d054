package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logitrack/internal/application/dto"
	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
)

// TransferHandler maneja despachos y recepciones (protegido).
// Cada petición bloquea mientras el lector entrega las n lecturas, por lo
// que el timeout del lector acota la duración de la petición.
type TransferHandler struct {
	send    *transfer.SendOperation
	receive *transfer.ReceiveOperation
}

// NewTransferHandler construye el handler de transferencias.
func NewTransferHandler(send *transfer.SendOperation, receive *transfer.ReceiveOperation) *TransferHandler {
	return &TransferHandler{send: send, receive: receive}
}

// Send godoc
// @Summary      Despachar mercancía escaneada hacia una ruta
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendTransferRequest  true  "bodega origen, destino y número de lecturas"
// @Success      200   {object}  dto.SendTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers/send [post]
func (h *TransferHandler) Send(c *fiber.Ctx) error {
	var in dto.SendTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	messages, err := h.send.Execute(c.UserContext(), in.WarehouseID, in.Address, in.Scans)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id, address y scans > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SendTransferResponse{
		Route:    entity.RouteKey(in.WarehouseID, in.Address),
		Messages: messages,
	})
}

// Receive godoc
// @Summary      Recibir mercancía de una ruta y conciliar contra el manifiesto
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveTransferRequest  true  "bodega destino, origen de la ruta y número de lecturas"
// @Success      200   {object}  dto.ReceiveTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers/receive [post]
func (h *TransferHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.receive.Execute(c.UserContext(), in.WarehouseID, in.Address, in.Scans)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id, address y scans > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ReceiveTransferResponse{
		Route:        entity.RouteKey(in.WarehouseID, in.Address),
		Messages:     res.Messages,
		LossDetected: res.LossDetected,
		Deltas:       res.Deltas,
	})
}
