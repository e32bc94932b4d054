package transfer

import "github.com/tu-usuario/logitrack/internal/domain/entity"

// Reconcile compara el manifiesto registrado en el transporte (cantidad
// despachada por producto, capturada al momento de confirmar la recepción)
// contra el lote recién escaneado. Devuelve el delta firmado por producto:
//
//	delta = registrado - escaneado
//
// Solo se comparan los productos presentes en el lado registrado; un
// producto escaneado que nunca se despachó no aparece en el resultado
// (comportamiento asimétrico del sistema de referencia, conservado a
// propósito).
func Reconcile(recorded map[string]int64, scanned *entity.ScanBatch) map[string]int64 {
	result := make(map[string]int64, len(recorded))
	for productID, shipped := range recorded {
		result[productID] = shipped - scanned.Count(productID)
	}
	return result
}

// NoLoss clasifica el resultado: true si y solo si todos los deltas son
// exactamente cero. Un solo desbalance en cualquier producto marca la
// recepción completa como pérdida detectada.
func NoLoss(deltas map[string]int64) bool {
	for _, d := range deltas {
		if d != 0 {
			return false
		}
	}
	return true
}

// NonZero devuelve el subconjunto de deltas distintos de cero: la evidencia
// que acompaña la notificación de pérdida.
func NonZero(deltas map[string]int64) map[string]int64 {
	out := make(map[string]int64)
	for k, d := range deltas {
		if d != 0 {
			out[k] = d
		}
	}
	return out
}
