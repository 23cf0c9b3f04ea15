package repository

import (
	"context"

	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create inserta el producto y completa ID y timestamps.
	Create(ctx context.Context, product *entity.Product) error
	// GetBySKU devuelve el producto con ese SKU, o nil si no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
