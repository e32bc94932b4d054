package dto

// SendTransferRequest entrada de POST /api/transfers/send: despacho desde
// una bodega hacia una dirección de destino, con n lecturas del escáner.
type SendTransferRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Scans       int    `json:"scans" validate:"required,min=1"`
}

// SendTransferResponse mensajes de estado por producto del despacho.
type SendTransferResponse struct {
	Route    string   `json:"route"`
	Messages []string `json:"messages"`
}

// ReceiveTransferRequest entrada de POST /api/transfers/receive.
type ReceiveTransferRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Scans       int    `json:"scans" validate:"required,min=1"`
}

// ReceiveTransferResponse resultado de la recepción con la conciliación.
type ReceiveTransferResponse struct {
	Route        string           `json:"route"`
	Messages     []string         `json:"messages"`
	LossDetected bool             `json:"loss_detected"`
	Deltas       map[string]int64 `json:"deltas"`
}
