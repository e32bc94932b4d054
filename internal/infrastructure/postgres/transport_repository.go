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

var _ repository.TransportRepository = (*TransportRepo)(nil)

// TransportRepo implementación del puerto TransportRepository sobre PostgreSQL.
// Cada ruta es una fila con su manifiesto como documento jsonb
// (producto -> cantidad en texto, con el marcador de pendiente incluido).
type TransportRepo struct {
	pool *pgxpool.Pool
}

// NewTransportRepository construye el adaptador de persistencia para rutas.
func NewTransportRepository(pool *pgxpool.Pool) *TransportRepo {
	return &TransportRepo{pool: pool}
}

// Get obtiene el registro de una ruta. Devuelve nil si no existe.
func (r *TransportRepo) Get(route string) (*entity.TransportRecord, error) {
	query := `SELECT route, products, last_modified FROM transports WHERE route = $1`
	var t entity.TransportRecord
	err := r.pool.QueryRow(context.Background(), query, route).Scan(&t.Route, &t.Products, &t.LastModified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transport: %w", err)
	}
	return &t, nil
}

// UpsertField fija el valor de un producto en el manifiesto de la ruta,
// creando la fila si la ruta aún no existe. El valor existente se
// sobrescribe en una sola sentencia.
func (r *TransportRepo) UpsertField(route, field, value string) error {
	query := `
		INSERT INTO transports (route, products, last_modified)
		VALUES ($1, jsonb_build_object($2::text, $3::text), now())
		ON CONFLICT (route) DO UPDATE
		SET products = transports.products || excluded.products, last_modified = now()`
	_, err := r.pool.Exec(context.Background(), query, route, field, value)
	if err != nil {
		return fmt.Errorf("upsert transport field: %w", err)
	}
	return nil
}

// SetField fija el valor de un producto en una ruta que ya existe.
func (r *TransportRepo) SetField(route, field, value string) error {
	query := `
		UPDATE transports
		SET products = products || jsonb_build_object($2::text, $3::text), last_modified = now()
		WHERE route = $1`
	tag, err := r.pool.Exec(context.Background(), query, route, field, value)
	if err != nil {
		return fmt.Errorf("set transport field: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

// List lista todas las rutas con manifiesto.
func (r *TransportRepo) List() ([]*entity.TransportRecord, error) {
	query := `SELECT route, products, last_modified FROM transports ORDER BY route`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transports: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransportRecord
	for rows.Next() {
		var t entity.TransportRecord
		if err := rows.Scan(&t.Route, &t.Products, &t.LastModified); err != nil {
			return nil, fmt.Errorf("scan transport: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
