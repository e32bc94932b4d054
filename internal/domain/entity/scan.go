package entity

// ScanEntry es la pareja (producto, ocurrencias) dentro de un lote de lecturas.
type ScanEntry struct {
	ProductID string
	Count     int64
}

// ScanBatch es el multiconjunto efímero que produce una ronda de lecturas
// del dispositivo: una entrada por producto resuelto, en orden de primera
// aparición. Los códigos no resueltos no aparecen. Se crea por operación,
// se consume de inmediato y no se persiste.
type ScanBatch struct {
	entries []ScanEntry
	index   map[string]int // productID -> posición en entries
}

// NewScanBatch crea un lote vacío.
func NewScanBatch() *ScanBatch {
	return &ScanBatch{index: make(map[string]int)}
}

// Add suma una ocurrencia del producto, conservando el orden de primera aparición.
func (b *ScanBatch) Add(productID string) {
	if i, ok := b.index[productID]; ok {
		b.entries[i].Count++
		return
	}
	b.index[productID] = len(b.entries)
	b.entries = append(b.entries, ScanEntry{ProductID: productID, Count: 1})
}

// Entries devuelve las entradas en orden de primera aparición.
func (b *ScanBatch) Entries() []ScanEntry {
	return b.entries
}

// Count devuelve las ocurrencias de un producto (0 si no aparece).
func (b *ScanBatch) Count(productID string) int64 {
	if i, ok := b.index[productID]; ok {
		return b.entries[i].Count
	}
	return 0
}

// Total devuelve la suma de ocurrencias de todo el lote.
func (b *ScanBatch) Total() int64 {
	var n int64
	for _, e := range b.entries {
		n += e.Count
	}
	return n
}

// Len devuelve el número de productos distintos del lote.
func (b *ScanBatch) Len() int {
	return len(b.entries)
}
