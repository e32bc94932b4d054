package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega con su inventario
// inicial por producto (cantidades como enteros no negativos).
type CreateWarehouseRequest struct {
	ID       string           `json:"id" validate:"required,min=1,max=100"`
	Products map[string]int64 `json:"products" validate:"omitempty,dive,min=0"`
}

// WarehouseResponse salida de una bodega: cantidades por producto.
type WarehouseResponse struct {
	ID           string           `json:"id"`
	Products     map[string]int64 `json:"products"`
	LastModified time.Time        `json:"last_modified"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}

// TransportResponse salida de un registro de tránsito: por producto, la
// cantidad y si sigue pendiente de confirmación.
type TransportResponse struct {
	Route        string                  `json:"route"`
	Products     map[string]TransitEntry `json:"products"`
	LastModified time.Time               `json:"last_modified"`
}

// TransitEntry cantidad de un producto en una ruta.
type TransitEntry struct {
	Quantity int64 `json:"quantity"`
	Pending  bool  `json:"pending"`
}

// TransportListResponse lista de rutas con mercancía registrada.
type TransportListResponse struct {
	Items []TransportResponse `json:"items"`
}
