// Package transfer contiene la lógica pura del motor de transferencias:
// el codec de cantidades textuales de los documentos y la conciliación
// de envíos contra lecturas de recepción.
package transfer

import (
	"fmt"
	"strconv"
	"strings"
)

// QuantityMarker es el prefijo convencional con el que se escribe la
// cantidad despachada en el manifiesto de transporte (":5").
const QuantityMarker = ":"

// CleanValue interpreta el valor textual de un campo de cantidad: quita el
// marcador ":" si está presente y parsea el entero. El valor vacío o el
// marcador solo se tratan como cero. Todo acceso aritmético a los
// documentos pasa por aquí; es el único punto donde vive la codificación.
func CleanValue(value string) (int64, error) {
	s := strings.TrimPrefix(value, QuantityMarker)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cantidad ilegible %q: %w", value, err)
	}
	return n, nil
}

// MarkValue codifica una cantidad despachada con el marcador (":5").
func MarkValue(n int64) string {
	return QuantityMarker + strconv.FormatInt(n, 10)
}

// FormatValue codifica una cantidad sin marcador, como la escribe la
// confirmación de recepción y el ledger de bodega.
func FormatValue(n int64) string {
	return strconv.FormatInt(n, 10)
}
