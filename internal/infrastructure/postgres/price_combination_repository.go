package postgres

import (
	"context"
	"fmt"

	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

var _ repository.PriceCombinationRepository = (*PriceCombinationRepo)(nil)

// PriceCombinationRepo implementación del puerto PriceCombinationRepository (usable con pool o tx).
type PriceCombinationRepo struct {
	q Querier
}

// NewPriceCombinationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceCombinationRepository(q Querier) *PriceCombinationRepo {
	return &PriceCombinationRepo{q: q}
}

// Create inserta una combinación de precio y completa su ID. Los slots en nil
// se guardan como NULL.
func (r *PriceCombinationRepo) Create(ctx context.Context, combo *entity.PriceCombination) error {
	query := `
		INSERT INTO price_combinations (product_id, variant_value_one, variant_value_two, variant_value_three, price, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		combo.ProductID, combo.ValueOneID, combo.ValueTwoID, combo.ValueThreeID,
		combo.Price, combo.Stock,
	).Scan(&combo.ID)
	if err != nil {
		return fmt.Errorf("insert price combination: %w", err)
	}
	return nil
}
