package usecase

import (
	"context"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

// VariantUseCase lectura de dimensiones de variante (fuente del formulario de alta).
type VariantUseCase struct {
	repo repository.VariantRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(repo repository.VariantRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo}
}

// ListDimensions devuelve todas las dimensiones.
func (uc *VariantUseCase) ListDimensions(ctx context.Context) ([]dto.DimensionResponse, error) {
	dims, err := uc.repo.ListDimensions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DimensionResponse, 0, len(dims))
	for _, d := range dims {
		out = append(out, dto.DimensionResponse{ID: d.ID, Title: d.Title})
	}
	return out, nil
}
