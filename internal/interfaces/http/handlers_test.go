package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
	apphttp "github.com/rezabtuhin/catalog-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeReader struct {
	rows []repository.CatalogRow
	got  *repository.CatalogFilters
}

func (f *fakeReader) ListRows(_ context.Context, filters repository.CatalogFilters) ([]repository.CatalogRow, error) {
	f.got = &filters
	return f.rows, nil
}

type fakeVariants struct {
	dimensions []entity.VariantDimension
	options    []repository.VariantOption
	values     []*entity.VariantValue
	nextID     int64
}

func (f *fakeVariants) ListDimensions(_ context.Context) ([]entity.VariantDimension, error) {
	return f.dimensions, nil
}

func (f *fakeVariants) CreateValue(_ context.Context, v *entity.VariantValue) error {
	f.nextID++
	v.ID = f.nextID
	f.values = append(f.values, v)
	return nil
}

func (f *fakeVariants) ResolveValue(_ context.Context, productID int64, value string) (*int64, error) {
	for i := len(f.values) - 1; i >= 0; i-- {
		if f.values[i].ProductID == productID && f.values[i].Value == value {
			id := f.values[i].ID
			return &id, nil
		}
	}
	return nil, nil
}

func (f *fakeVariants) ListDistinctOptions(_ context.Context) ([]repository.VariantOption, error) {
	return f.options, nil
}

type fakeProducts struct {
	bySKU  map[string]*entity.Product
	nextID int64
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.bySKU[p.SKU] = p
	return nil
}

func (f *fakeProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

type fakePrices struct {
	created []*entity.PriceCombination
}

func (f *fakePrices) Create(_ context.Context, c *entity.PriceCombination) error {
	f.created = append(f.created, c)
	return nil
}

type fakeTx struct {
	products *fakeProducts
	variants *fakeVariants
	prices   *fakePrices
}

func (f *fakeTx) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	priceRepo repository.PriceCombinationRepository,
) error) error {
	return fn(f.products, f.variants, f.prices)
}

type fakePDF struct{}

func (fakePDF) GenerateCatalogPDF(_ context.Context, _ []dto.CatalogProduct, _ time.Time) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

var _ usecase.CatalogReportGenerator = fakePDF{}

// buildApp arma la aplicación Fiber completa sobre los fakes.
func buildApp(reader *fakeReader, variants *fakeVariants) *fiber.App {
	products := &fakeProducts{bySKU: map[string]*entity.Product{}}
	tx := &fakeTx{products: products, variants: variants, prices: &fakePrices{}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(reader, variants, 3, "/api/products"),
		ExportUC:  usecase.NewExportCatalogUseCase(reader, fakePDF{}),
		CreateUC:  usecase.NewCreateProductUseCase(tx, products),
		VariantUC: usecase.NewVariantUseCase(variants),
		ListPath:  "/api/products",
	})
	return app
}

func catalogRows() []repository.CatalogRow {
	price := decimal.RequireFromString("10.00")
	stock := 5
	red := "Red"
	rows := make([]repository.CatalogRow, 0, 4)
	for i := int64(1); i <= 4; i++ {
		rows = append(rows, repository.CatalogRow{
			ProductID:   i,
			Title:       "Producto " + string(rune('A'-1+i)),
			CreatedAt:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			Description: "desc",
			SlotOne:     &red,
			Price:       &price,
			Stock:       &stock,
		})
	}
	return rows
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

// GET /api/products: página pedida, conteo de grupos y opciones del dropdown.
func TestList_RespuestaPaginada(t *testing.T) {
	reader := &fakeReader{rows: catalogRows()}
	variants := &fakeVariants{options: []repository.VariantOption{
		{DimensionTitle: "Color", Value: "Red"},
	}}
	app := buildApp(reader, variants)

	resp := doJSON(t, app, http.MethodGet, "/api/products/?page=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CatalogListResponse](t, resp)
	assert.Equal(t, 4, out.Count)
	assert.Equal(t, 2, out.Products.CurrentPage)
	assert.Len(t, out.Products.Items, 1) // 4 grupos, perPage 3
	require.Len(t, out.VariantOptions, 1)
	assert.Equal(t, "Color", out.VariantOptions[0].Dimension)
}

// Los query params llegan como filtros tipados al lector.
func TestList_FiltrosLleganAlLector(t *testing.T) {
	reader := &fakeReader{}
	app := buildApp(reader, &fakeVariants{})

	resp := doJSON(t, app, http.MethodGet,
		"/api/products/?title=camisa&variant=XL&price_from=5&price_to=50&date=2024-03-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, reader.got)
	assert.Equal(t, "camisa", reader.got.TitleContains)
	assert.Equal(t, "XL", reader.got.VariantContains)
	assert.True(t, reader.got.PriceActive())
	require.NotNil(t, reader.got.CreatedOnOrAfter)
	assert.Equal(t, "2024-03-01", reader.got.CreatedOnOrAfter.Format("2006-01-02"))
}

// Fecha malformada: 400 con mensaje de campo, sin ejecutar la consulta.
func TestList_FechaMalformada(t *testing.T) {
	reader := &fakeReader{}
	app := buildApp(reader, &fakeVariants{})

	resp := doJSON(t, app, http.MethodGet, "/api/products/?date=20-05-2024", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "date")
	assert.Nil(t, reader.got)
}

// Precio no numérico: 400 con mensaje de campo.
func TestList_PrecioNoNumerico(t *testing.T) {
	app := buildApp(&fakeReader{}, &fakeVariants{})

	resp := doJSON(t, app, http.MethodGet, "/api/products/?price_from=abc&price_to=10", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Contains(t, out.Fields, "price_from")
}

// Un solo límite de precio no es error: el filtro queda inactivo.
func TestList_UnSoloLimiteDePrecio(t *testing.T) {
	reader := &fakeReader{}
	app := buildApp(reader, &fakeVariants{})

	resp := doJSON(t, app, http.MethodGet, "/api/products/?price_from=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, reader.got)
	assert.False(t, reader.got.PriceActive())
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de producto
// ──────────────────────────────────────────────────────────────────────────────

func createPayload() map[string]any {
	return map[string]any{
		"product_name":        "Camisa",
		"product_sku":         "CAM-001",
		"product_description": "Camisa de algodón",
		"product_variant": []map[string]any{
			{"option": 1, "value": []string{"Red", "Blue"}},
		},
		"product_preview": []map[string]any{
			{"variant": "Red", "price": "9.99", "stock": 5},
		},
	}
}

// POST /api/products: 201 con Location apuntando al listado.
func TestCreate_Exitoso(t *testing.T) {
	app := buildApp(&fakeReader{}, &fakeVariants{})

	resp := doJSON(t, app, http.MethodPost, "/api/products/", createPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/products", resp.Header.Get("Location"))

	out := decodeBody[dto.CreateProductResponse](t, resp)
	assert.NotZero(t, out.ID)
	assert.Empty(t, out.Warnings)
}

// SKU duplicado: 409 y sin escrituras nuevas.
func TestCreate_SKUDuplicado(t *testing.T) {
	app := buildApp(&fakeReader{}, &fakeVariants{})

	resp := doJSON(t, app, http.MethodPost, "/api/products/", createPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/products/", createPayload())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", out.Code)
	assert.Contains(t, out.Fields, "product_sku")
}

// Campos requeridos faltantes: 400 con mensajes por campo.
func TestCreate_CamposFaltantes(t *testing.T) {
	app := buildApp(&fakeReader{}, &fakeVariants{})

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "product_name")
	assert.Contains(t, out.Fields, "product_sku")
	assert.Contains(t, out.Fields, "product_description")
}

// Segmento sin resolver: 201 con warning en el cuerpo.
func TestCreate_WarningPorSegmentoSinResolver(t *testing.T) {
	app := buildApp(&fakeReader{}, &fakeVariants{})

	payload := createPayload()
	payload["product_preview"] = []map[string]any{
		{"variant": "Red/Inexistente", "price": "9.99", "stock": 5},
	}

	resp := doJSON(t, app, http.MethodPost, "/api/products/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.CreateProductResponse](t, resp)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "Inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dimensiones y export
// ──────────────────────────────────────────────────────────────────────────────

// GET /api/variants: todas las dimensiones.
func TestVariants_ListaDimensiones(t *testing.T) {
	variants := &fakeVariants{dimensions: []entity.VariantDimension{
		{ID: 1, Title: "Size"},
		{ID: 2, Title: "Color"},
	}}
	app := buildApp(&fakeReader{}, variants)

	resp := doJSON(t, app, http.MethodGet, "/api/variants/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[[]dto.DimensionResponse](t, resp)
	require.Len(t, out, 2)
	assert.Equal(t, "Size", out[0].Title)
}

// GET /api/products/export: PDF con los headers correctos.
func TestExport_DevuelvePDF(t *testing.T) {
	app := buildApp(&fakeReader{rows: catalogRows()}, &fakeVariants{})

	resp := doJSON(t, app, http.MethodGet, "/api/products/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(raw))
}
