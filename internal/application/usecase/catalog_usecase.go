package usecase

import (
	"context"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
	"github.com/rezabtuhin/catalog-admin/pkg/paginate"
)

// CatalogUseCase arma el listado de catálogo: consulta las filas planas,
// las agrupa por producto y pagina la colección agrupada en memoria (el ítem
// de página es el grupo, no la fila de precio).
type CatalogUseCase struct {
	reader   repository.CatalogReader
	variants repository.VariantRepository
	perPage  int
	basePath string
}

// NewCatalogUseCase construye el caso de uso. perPage <= 0 usa el default del paginador.
func NewCatalogUseCase(reader repository.CatalogReader, variants repository.VariantRepository, perPage int, basePath string) *CatalogUseCase {
	return &CatalogUseCase{reader: reader, variants: variants, perPage: perPage, basePath: basePath}
}

// List ejecuta el pipeline completo del listado: filtrar -> agrupar -> paginar,
// más las opciones de variante para el dropdown de filtro.
func (uc *CatalogUseCase) List(ctx context.Context, filters repository.CatalogFilters, page int) (*dto.CatalogListResponse, error) {
	rows, err := uc.reader.ListRows(ctx, filters)
	if err != nil {
		return nil, err
	}
	groups := GroupRows(rows)

	paged, err := paginate.New(groups, uc.perPage, page, uc.basePath)
	if err != nil {
		return nil, err
	}

	options, err := uc.variantOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CatalogListResponse{
		Count:          len(groups),
		Products:       paged,
		VariantOptions: options,
	}, nil
}

// GroupRows agrupa filas planas contiguas-o-no que comparten título en una
// entrada por producto, preservando el orden de primera aparición.
//
// La clave de agrupación es el TÍTULO, no la identidad: dos productos distintos
// con el mismo título se funden en una sola entrada. Es una limitación conocida
// del comportamiento heredado que se preserva a propósito (los tests la
// documentan).
func GroupRows(rows []repository.CatalogRow) []dto.CatalogProduct {
	index := make(map[string]int)
	groups := make([]dto.CatalogProduct, 0)

	for _, row := range rows {
		i, ok := index[row.Title]
		if !ok {
			groups = append(groups, dto.CatalogProduct{
				Title:       row.Title,
				Created:     dto.FormatCreated(row.CreatedAt),
				Description: row.Description,
				Variants:    []dto.CatalogVariantRow{},
			})
			i = len(groups) - 1
			index[row.Title] = i
		}

		// Producto sin combinaciones: la fila existe solo por el LEFT JOIN,
		// el grupo aparece pero sin fila de variantes.
		if row.SlotOne == nil && row.SlotTwo == nil && row.SlotThree == nil && row.Price == nil {
			continue
		}

		groups[i].Variants = append(groups[i].Variants, dto.CatalogVariantRow{
			VariantOne:   row.SlotOne,
			VariantTwo:   row.SlotTwo,
			VariantThree: row.SlotThree,
			Price:        row.Price,
			Stock:        row.Stock,
		})
	}
	return groups
}

// variantOptions agrupa los valores distintos por título de dimensión,
// preservando el orden que entrega el repositorio.
func (uc *CatalogUseCase) variantOptions(ctx context.Context) ([]dto.VariantOptionGroup, error) {
	options, err := uc.variants.ListDistinctOptions(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	groups := make([]dto.VariantOptionGroup, 0)
	for _, o := range options {
		i, ok := index[o.DimensionTitle]
		if !ok {
			groups = append(groups, dto.VariantOptionGroup{Dimension: o.DimensionTitle})
			i = len(groups) - 1
			index[o.DimensionTitle] = i
		}
		groups[i].Values = append(groups[i].Values, o.Value)
	}
	return groups, nil
}
