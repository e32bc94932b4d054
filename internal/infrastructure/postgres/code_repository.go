package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
)

var _ repository.CodeRepository = (*CodeRepo)(nil)

// CodeRepo implementación del puerto CodeRepository sobre PostgreSQL.
// Resuelve códigos de barras únicos al producto que identifican.
type CodeRepo struct {
	pool *pgxpool.Pool
}

// NewCodeRepository construye el adaptador de resolución de códigos.
func NewCodeRepository(pool *pgxpool.Pool) *CodeRepo {
	return &CodeRepo{pool: pool}
}

// Lookup resuelve un código a su id de producto. Devuelve ErrNotFound
// si el código no está registrado.
func (r *CodeRepo) Lookup(codeID string) (string, error) {
	query := `SELECT product_id FROM unique_codes WHERE code = $1`
	var productID string
	err := r.pool.QueryRow(context.Background(), query, codeID).Scan(&productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("lookup code: %w", err)
	}
	return productID, nil
}
