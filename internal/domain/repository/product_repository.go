package repository

import "github.com/tu-usuario/logitrack/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo de
// productos (nombres y valor unitario para valorar pérdidas).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
