package repository

import (
	"context"

	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
)

// VariantOption valor de variante con el título de su dimensión, para el
// dropdown del listado agrupado por dimensión.
type VariantOption struct {
	DimensionTitle string
	Value          string
}

// VariantRepository puerto de persistencia para dimensiones y valores de variante.
type VariantRepository interface {
	// ListDimensions devuelve todas las dimensiones ordenadas por ID.
	ListDimensions(ctx context.Context) ([]entity.VariantDimension, error)
	// CreateValue inserta un valor de variante y completa su ID.
	CreateValue(ctx context.Context, value *entity.VariantValue) error
	// ResolveValue devuelve el ID del valor más recientemente creado con ese
	// texto para el producto, o nil si ninguno coincide.
	ResolveValue(ctx context.Context, productID int64, value string) (*int64, error)
	// ListDistinctOptions devuelve los valores distintos con su dimensión,
	// ordenados por dimensión.
	ListDistinctOptions(ctx context.Context) ([]VariantOption, error)
}

// PriceCombinationRepository puerto de persistencia para combinaciones de precio.
type PriceCombinationRepository interface {
	// Create inserta la combinación y completa su ID.
	Create(ctx context.Context, combo *entity.PriceCombination) error
}
