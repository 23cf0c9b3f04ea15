package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CatalogFilters filtros opcionales del listado. Se componen con AND; el filtro
// de variante es un OR interno sobre los tres slots. Los límites de precio solo
// activan el filtro cuando ambos están presentes (quirk documentado del
// comportamiento heredado, no se "corrige" en silencio).
type CatalogFilters struct {
	TitleContains    string
	VariantContains  string
	PriceFrom        *decimal.Decimal
	PriceTo          *decimal.Decimal
	CreatedOnOrAfter *time.Time // granularidad de día; se ignora la hora
}

// PriceActive indica si el rango de precio aplica (requiere ambos límites).
func (f CatalogFilters) PriceActive() bool {
	return f.PriceFrom != nil && f.PriceTo != nil
}

// CatalogRow fila plana del join producto -> combinación -> valores de variante.
// Un producto sin combinaciones aparece una vez con los campos de slot/precio en nil.
type CatalogRow struct {
	ProductID   int64
	Title       string
	CreatedAt   time.Time
	Description string
	SlotOne     *string
	SlotTwo     *string
	SlotThree   *string
	Price       *decimal.Decimal
	Stock       *int
}

// CatalogReader puerto de solo lectura del listado de catálogo.
type CatalogReader interface {
	// ListRows devuelve las filas planas filtradas, ordenadas por ID de
	// producto ascendente para que las filas de un producto queden contiguas
	// de cara a la agrupación.
	ListRows(ctx context.Context, filters CatalogFilters) ([]CatalogRow, error)
}
