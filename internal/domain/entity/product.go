package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un tipo de producto del catálogo. FieldKey es el nombre
// de campo estable con el que el producto aparece en los documentos de
// bodega y transporte (product_1 .. product_10).
type Product struct {
	ID        string
	FieldKey  string // nombre de campo en los documentos de ledger
	Name      string
	UnitPrice decimal.Decimal // valor unitario para estimar pérdidas
	CreatedAt time.Time
	UpdatedAt time.Time
}
