package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del estado actual de bodegas y rutas.
type DashboardSummaryDTO struct {
	Warehouses      int `json:"warehouses"`       // bodegas registradas
	Products        int `json:"products"`         // fichas de catálogo
	ActiveRoutes    int `json:"active_routes"`    // rutas con mercancía registrada
	PendingShipping int `json:"pending_shipping"` // productos pendientes de confirmar (valor con marcador)

	// Unidades totales por ubicación, ordenadas por id de bodega
	Locations []LocationSummaryDTO `json:"locations"`

	// Unidades en tránsito ya confirmables (suma de remanentes)
	UnitsInTransit int64 `json:"units_in_transit"`
}

// LocationSummaryDTO total de unidades y ocupación de una bodega.
// La ocupación asume una capacidad de 100 unidades por producto.
type LocationSummaryDTO struct {
	WarehouseID string          `json:"warehouse_id"`
	TotalUnits  int64           `json:"total_units"`
	Utilization decimal.Decimal `json:"utilization"` // porcentaje 0-100
}
