package transfer

import (
	"fmt"

	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	domtransfer "github.com/tu-usuario/logitrack/internal/domain/transfer"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

// WarehouseLedger opera el documento de inventario de cada bodega.
//
// A diferencia del manifiesto de transporte, aquí no hay guardia de
// negatividad al debitar: la única guardia del sistema vive en la
// confirmación de recepción del transporte (comportamiento de referencia,
// ver DESIGN.md). El campo del producto debe existir en el documento; su
// ausencia es violación de contrato, no un cero implícito.
type WarehouseLedger struct {
	repo repository.WarehouseRepository
	log  *logger.Logger
}

// NewWarehouseLedger construye el ledger sobre su puerto de persistencia.
func NewWarehouseLedger(repo repository.WarehouseRepository, log *logger.Logger) *WarehouseLedger {
	return &WarehouseLedger{repo: repo, log: log.Component("warehouse-ledger")}
}

// Debit resta count del producto en la bodega (salida por despacho) y
// devuelve un log corto legible de lo que cambió.
func (l *WarehouseLedger) Debit(warehouseID, productID string, count int64) ([]string, error) {
	return l.apply(warehouseID, productID, -count)
}

// Credit suma count al producto en la bodega (entrada por recepción).
func (l *WarehouseLedger) Credit(warehouseID, productID string, count int64) ([]string, error) {
	return l.apply(warehouseID, productID, count)
}

func (l *WarehouseLedger) apply(warehouseID, productID string, delta int64) ([]string, error) {
	record, err := l.repo.Get(warehouseID)
	if err != nil {
		return nil, fmt.Errorf("leer bodega %s: %w", warehouseID, err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	raw, ok := record.Quantity(productID)
	if !ok {
		return nil, domain.ErrProductNotOnRecord
	}
	existing, err := domtransfer.CleanValue(raw)
	if err != nil {
		return nil, fmt.Errorf("bodega %s, producto %s: %w", warehouseID, productID, err)
	}
	updated := existing + delta
	if err := l.repo.SetField(warehouseID, productID, domtransfer.FormatValue(updated)); err != nil {
		return nil, fmt.Errorf("actualizar bodega %s: %w", warehouseID, err)
	}
	l.log.Info().
		Str("warehouse_id", warehouseID).
		Str("product_id", productID).
		Int64("from", existing).
		Int64("to", updated).
		Msg("inventario de bodega actualizado")
	return []string{
		fmt.Sprintf("bodega %s: %s %d -> %d", warehouseID, productID, existing, updated),
	}, nil
}
