package transfer

import (
	"fmt"

	"github.com/tu-usuario/logitrack/internal/domain"
	domtransfer "github.com/tu-usuario/logitrack/internal/domain/transfer"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

// TransportLedger opera el manifiesto de mercancía en tránsito de cada ruta.
type TransportLedger struct {
	repo repository.TransportRepository
	log  *logger.Logger
}

// NewTransportLedger construye el ledger sobre su puerto de persistencia.
func NewTransportLedger(repo repository.TransportRepository, log *logger.Logger) *TransportLedger {
	return &TransportLedger{repo: repo, log: log.Component("transport-ledger")}
}

// Ship registra el despacho: upsert del documento de la ruta fijando el
// campo del producto a la cantidad absoluta de este envío, con el marcador
// de cantidad despachada. Cada llamada representa la contribución de un
// evento de despacho y sobrescribe un valor pendiente anterior para ese
// producto/ruta. Devuelve la clave de la ruta.
func (l *TransportLedger) Ship(route, productID string, count int64) (string, error) {
	if err := l.repo.UpsertField(route, productID, domtransfer.MarkValue(count)); err != nil {
		return "", fmt.Errorf("registrar despacho en %s: %w", route, err)
	}
	l.log.Info().Str("route", route).Str("product_id", productID).Int64("count", count).Msg("despacho registrado")
	return route, nil
}

// ReceiptConfirmation es el resultado de confirmar la recepción de un
// producto: la cantidad que constaba como despachada al momento de leer el
// documento y el remanente que quedó escrito.
type ReceiptConfirmation struct {
	ProductID string
	Shipped   int64 // cantidad registrada antes de restar
	Remaining int64 // cantidad escrita de vuelta
}

// ConfirmReceipt descuenta del manifiesto la cantidad recibida. Se rechaza
// sin mutación si la ruta no existe, si el producto no consta en el
// documento o si el descuento dejaría la cantidad negativa (condición de
// advertencia, no de pánico: el manifiesto queda intacto para ese producto).
func (l *TransportLedger) ConfirmReceipt(route, productID string, count int64) (*ReceiptConfirmation, error) {
	record, err := l.repo.Get(route)
	if err != nil {
		return nil, fmt.Errorf("leer manifiesto %s: %w", route, err)
	}
	if record == nil {
		return nil, domain.ErrRouteNotFound
	}
	raw, ok := record.Quantity(productID)
	if !ok {
		return nil, domain.ErrProductNotOnRecord
	}
	existing, err := domtransfer.CleanValue(raw)
	if err != nil {
		return nil, fmt.Errorf("manifiesto %s, producto %s: %w", route, productID, err)
	}
	remaining := existing - count
	if remaining < 0 {
		l.log.Warn().
			Str("route", route).
			Str("product_id", productID).
			Int64("recorded", existing).
			Int64("requested", count).
			Msg("cantidad registrada insuficiente, recepción rechazada")
		return nil, domain.ErrInsufficientStock
	}
	if err := l.repo.SetField(route, productID, domtransfer.FormatValue(remaining)); err != nil {
		return nil, fmt.Errorf("actualizar manifiesto %s: %w", route, err)
	}
	return &ReceiptConfirmation{ProductID: productID, Shipped: existing, Remaining: remaining}, nil
}
