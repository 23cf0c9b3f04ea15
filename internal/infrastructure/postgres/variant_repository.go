package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación del puerto VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// ListDimensions devuelve todas las dimensiones de variante ordenadas por ID.
func (r *VariantRepo) ListDimensions(ctx context.Context) ([]entity.VariantDimension, error) {
	rows, err := r.q.Query(ctx, `SELECT id, title FROM variant_dimensions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	defer rows.Close()

	var list []entity.VariantDimension
	for rows.Next() {
		var d entity.VariantDimension
		if err := rows.Scan(&d.ID, &d.Title); err != nil {
			return nil, fmt.Errorf("scan dimension: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CreateValue inserta un valor de variante bajo un producto y completa su ID.
func (r *VariantRepo) CreateValue(ctx context.Context, value *entity.VariantValue) error {
	query := `
		INSERT INTO variant_values (variant_id, value, product_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, value.VariantID, value.Value, value.ProductID).Scan(&value.ID)
	if err != nil {
		return fmt.Errorf("insert variant value: %w", err)
	}
	return nil
}

// ResolveValue devuelve el ID del valor más recientemente creado con ese texto
// para el producto (ORDER BY id DESC), o nil si ninguno coincide.
func (r *VariantRepo) ResolveValue(ctx context.Context, productID int64, value string) (*int64, error) {
	query := `
		SELECT id FROM variant_values
		WHERE product_id = $1 AND value = $2
		ORDER BY id DESC
		LIMIT 1`
	var id int64
	err := r.q.QueryRow(ctx, query, productID, value).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve variant value: %w", err)
	}
	return &id, nil
}

// ListDistinctOptions devuelve los valores distintos con el título de su
// dimensión, ordenados por dimensión, para el dropdown del listado.
func (r *VariantRepo) ListDistinctOptions(ctx context.Context) ([]repository.VariantOption, error) {
	query := `
		SELECT d.title, vv.value
		FROM variant_values vv
		JOIN variant_dimensions d ON vv.variant_id = d.id
		GROUP BY vv.value, d.title, vv.variant_id
		ORDER BY vv.variant_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list variant options: %w", err)
	}
	defer rows.Close()

	var list []repository.VariantOption
	for rows.Next() {
		var o repository.VariantOption
		if err := rows.Scan(&o.DimensionTitle, &o.Value); err != nil {
			return nil, fmt.Errorf("scan variant option: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
