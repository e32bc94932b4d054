package repository

import "github.com/tu-usuario/logitrack/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para los documentos
// de inventario de bodega (DIP). El contrato es el de un almacén de
// documentos clave-valor: lectura del documento completo y escritura
// atómica de un campo a un valor literal (la aritmética la hace el core).
type WarehouseRepository interface {
	// Get devuelve el documento de la bodega o nil si no existe.
	Get(id string) (*entity.WarehouseRecord, error)
	// Create persiste un documento nuevo con sus campos iniciales.
	Create(record *entity.WarehouseRecord) error
	// SetField fija un campo de producto al valor literal indicado, en una
	// sola sentencia (atomicidad a nivel de documento).
	SetField(id, productField, value string) error
	// List devuelve todos los documentos de bodega (vista de solo lectura).
	List() ([]*entity.WarehouseRecord, error)
}
