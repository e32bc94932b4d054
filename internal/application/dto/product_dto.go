package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de una ficha de catálogo.
type ProductResponse struct {
	ID        string          `json:"id"`
	FieldKey  string          `json:"field_key"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
