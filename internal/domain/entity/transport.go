package entity

import "time"

// RouteKey forma la clave compuesta de un trayecto: bodega origen + dirección destino.
func RouteKey(warehouseID, address string) string {
	return warehouseID + "-" + address
}

// TransportRecord es el manifiesto de mercancía en tránsito para una ruta:
// mapa campo de producto -> cantidad textual. Al despachar, el valor se
// escribe con el marcador ":" (":5"); al confirmar recepción se escribe el
// remanente sin marcador. CleanValue acepta ambas formas.
type TransportRecord struct {
	Route        string            // clave compuesta origen-destino (clave primaria)
	Products     map[string]string // campo de producto -> cantidad textual
	LastModified time.Time
}

// Quantity devuelve el valor textual crudo para un producto y si el campo existe.
func (t *TransportRecord) Quantity(productField string) (string, bool) {
	v, ok := t.Products[productField]
	return v, ok
}
