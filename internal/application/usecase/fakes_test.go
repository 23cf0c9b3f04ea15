package usecase_test

import (
	"context"
	"time"

	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogReader struct {
	rows []repository.CatalogRow
	got  *repository.CatalogFilters // filtros recibidos en la última llamada
}

func (f *fakeCatalogReader) ListRows(_ context.Context, filters repository.CatalogFilters) ([]repository.CatalogRow, error) {
	f.got = &filters
	return f.rows, nil
}

type fakeProductRepo struct {
	bySKU   map[string]*entity.Product
	created []*entity.Product
	nextID  int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{bySKU: map[string]*entity.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	p.UpdatedAt = p.CreatedAt
	f.bySKU[p.SKU] = p
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

type fakeVariantRepo struct {
	dimensions []entity.VariantDimension
	options    []repository.VariantOption
	values     []*entity.VariantValue
	nextID     int64
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{nextID: 1}
}

func (f *fakeVariantRepo) ListDimensions(_ context.Context) ([]entity.VariantDimension, error) {
	return f.dimensions, nil
}

func (f *fakeVariantRepo) CreateValue(_ context.Context, v *entity.VariantValue) error {
	v.ID = f.nextID
	f.nextID++
	f.values = append(f.values, v)
	return nil
}

// ResolveValue imita al repositorio real: el valor más recientemente creado
// (ID mayor) con ese texto para el producto.
func (f *fakeVariantRepo) ResolveValue(_ context.Context, productID int64, value string) (*int64, error) {
	for i := len(f.values) - 1; i >= 0; i-- {
		v := f.values[i]
		if v.ProductID == productID && v.Value == value {
			id := v.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (f *fakeVariantRepo) ListDistinctOptions(_ context.Context) ([]repository.VariantOption, error) {
	return f.options, nil
}

type fakePriceRepo struct {
	created []*entity.PriceCombination
	nextID  int64
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{nextID: 1}
}

func (f *fakePriceRepo) Create(_ context.Context, c *entity.PriceCombination) error {
	c.ID = f.nextID
	f.nextID++
	f.created = append(f.created, c)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes y cuenta las
// invocaciones para poder afirmar que una validación fallida nunca abre la tx.
type fakeTxRunner struct {
	products *fakeProductRepo
	variants *fakeVariantRepo
	prices   *fakePriceRepo
	runs     int
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	priceRepo repository.PriceCombinationRepository,
) error) error {
	f.runs++
	return fn(f.products, f.variants, f.prices)
}
