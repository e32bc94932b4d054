package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
// Cada bodega es una fila con su inventario como documento jsonb
// (producto -> cantidad en texto), igual que el registro de tránsito.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Get obtiene el registro de una bodega. Devuelve nil si no existe.
func (r *WarehouseRepo) Get(id string) (*entity.WarehouseRecord, error) {
	query := `SELECT id, products, last_modified FROM warehouses WHERE id = $1`
	var w entity.WarehouseRecord
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Products, &w.LastModified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Create persiste una bodega nueva con su inventario inicial.
func (r *WarehouseRepo) Create(record *entity.WarehouseRecord) error {
	query := `INSERT INTO warehouses (id, products, last_modified) VALUES ($1, $2, now())`
	_, err := r.pool.Exec(context.Background(), query, record.ID, record.Products)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// SetField fija el valor de un producto dentro del documento de la bodega.
// La escritura de un solo campo es atómica a nivel de fila.
func (r *WarehouseRepo) SetField(id, field, value string) error {
	query := `
		UPDATE warehouses
		SET products = products || jsonb_build_object($2::text, $3::text), last_modified = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, field, value)
	if err != nil {
		return fmt.Errorf("set warehouse field: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las bodegas.
func (r *WarehouseRepo) List() ([]*entity.WarehouseRecord, error) {
	query := `SELECT id, products, last_modified FROM warehouses ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseRecord
	for rows.Next() {
		var w entity.WarehouseRecord
		if err := rows.Scan(&w.ID, &w.Products, &w.LastModified); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
