package entity

import "time"

// WarehouseRecord es el documento de inventario de una bodega fija:
// mapa campo de producto (product_1..product_n) -> cantidad textual.
// Las cantidades se guardan como texto en el documento pero su semántica
// es siempre entera; el codec vive en domain/transfer.
type WarehouseRecord struct {
	ID           string            // id de la bodega (clave primaria del documento)
	Products     map[string]string // campo de producto -> cantidad textual
	LastModified time.Time
}

// Quantity devuelve el valor textual crudo para un producto y si el campo
// existe en el documento. La ausencia del campo es significativa: el
// ledger de bodega la trata como violación de contrato, no como cero.
func (w *WarehouseRecord) Quantity(productField string) (string, bool) {
	v, ok := w.Products[productField]
	return v, ok
}
