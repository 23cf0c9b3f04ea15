package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

var _ repository.CatalogReader = (*CatalogReader)(nil)

// CatalogReader consulta de solo lectura del listado: productos con sus
// combinaciones de precio y los textos de los valores de cada slot.
type CatalogReader struct {
	q Querier
}

// NewCatalogReader construye el lector. Pasar pool o tx (Querier).
func NewCatalogReader(q Querier) *CatalogReader {
	return &CatalogReader{q: q}
}

const catalogBaseQuery = `
	SELECT p.id, p.title, p.created_at, p.description,
	       v1.value AS slot_one, v2.value AS slot_two, v3.value AS slot_three,
	       pc.price, pc.stock
	FROM products p
	LEFT JOIN price_combinations pc ON pc.product_id = p.id
	LEFT JOIN variant_values v1 ON pc.variant_value_one = v1.id
	LEFT JOIN variant_values v2 ON pc.variant_value_two = v2.id
	LEFT JOIN variant_values v3 ON pc.variant_value_three = v3.id`

// ListRows ejecuta la consulta plana con los filtros compilados en una sola
// pasada. Orden estable por ID de producto ascendente: las filas de un mismo
// producto quedan contiguas para la etapa de agrupación.
func (r *CatalogReader) ListRows(ctx context.Context, filters repository.CatalogFilters) ([]repository.CatalogRow, error) {
	where, args := compileFilters(filters)

	var sb strings.Builder
	sb.WriteString(catalogBaseQuery)
	if where != "" {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(where)
	}
	sb.WriteString("\n\tORDER BY p.id ASC")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog rows: %w", err)
	}
	defer rows.Close()

	var list []repository.CatalogRow
	for rows.Next() {
		var row repository.CatalogRow
		if err := rows.Scan(
			&row.ProductID, &row.Title, &row.CreatedAt, &row.Description,
			&row.SlotOne, &row.SlotTwo, &row.SlotThree,
			&row.Price, &row.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
