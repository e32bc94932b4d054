package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

// SendOperation orquesta un despacho: escanea el lote de salida, registra
// cada producto en el manifiesto de la ruta y debita la bodega de origen.
//
// La operación no es atómica entre productos: el fallo de un producto se
// registra como mensaje y el resto del lote continúa.
type SendOperation struct {
	scans     *ScanCollector
	transport *TransportLedger
	warehouse *WarehouseLedger
	log       *logger.Logger
}

// NewSendOperation construye la operación.
func NewSendOperation(scans *ScanCollector, transport *TransportLedger, warehouse *WarehouseLedger, log *logger.Logger) *SendOperation {
	return &SendOperation{scans: scans, transport: transport, warehouse: warehouse, log: log.Component("send-op")}
}

// Execute realiza el despacho desde warehouseID hacia address con n lecturas.
// Devuelve la lista de mensajes de estado por producto.
func (op *SendOperation) Execute(ctx context.Context, warehouseID, address string, n int) ([]string, error) {
	if warehouseID == "" || address == "" || n <= 0 {
		return nil, domain.ErrInvalidInput
	}
	route := entity.RouteKey(warehouseID, address)
	opID := uuid.New().String()
	op.log.Info().Str("op_id", opID).Str("route", route).Int("scans", n).Msg("iniciando despacho")

	batch, err := op.scans.Collect(ctx, n)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, e := range batch.Entries() {
		if _, err := op.transport.Ship(route, e.ProductID, e.Count); err != nil {
			op.log.Error().Err(err).Str("op_id", opID).Str("product_id", e.ProductID).Msg("despacho de producto falló")
			messages = append(messages, fmt.Sprintf("no se pudo registrar el despacho de %s", e.ProductID))
			continue
		}
		messages = append(messages, fmt.Sprintf("despacho registrado en ruta %s: %s (%d unidades)", route, e.ProductID, e.Count))

		debitMsgs, err := op.warehouse.Debit(warehouseID, e.ProductID, e.Count)
		if err != nil {
			op.log.Error().Err(err).Str("op_id", opID).Str("product_id", e.ProductID).Msg("débito de bodega falló")
			messages = append(messages, fmt.Sprintf("no se pudo debitar %s de la bodega %s", e.ProductID, warehouseID))
			continue
		}
		messages = append(messages, debitMsgs...)
	}
	return messages, nil
}
