package repository

import "github.com/tu-usuario/logitrack/internal/domain/entity"

// TransportRepository define el puerto de persistencia para los manifiestos
// de transporte, con semántica upsert: el documento de una ruta se crea en
// el primer despacho.
type TransportRepository interface {
	// Get devuelve el manifiesto de la ruta o nil si no existe.
	Get(route string) (*entity.TransportRecord, error)
	// UpsertField crea el documento si no existe y fija el campo de producto
	// al valor literal indicado, en una sola sentencia.
	UpsertField(route, productField, value string) error
	// SetField fija un campo en un documento existente.
	SetField(route, productField, value string) error
	// List devuelve todos los manifiestos (vista de solo lectura).
	List() ([]*entity.TransportRecord, error)
}
