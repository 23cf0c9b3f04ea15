package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
)

func newCreateFixture() (*usecase.CreateProductUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{
		products: newFakeProductRepo(),
		variants: newFakeVariantRepo(),
		prices:   newFakePriceRepo(),
	}
	return usecase.NewCreateProductUseCase(tx, tx.products), tx
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		ProductName:        "Camisa",
		ProductSKU:         "CAM-001",
		ProductDescription: "Camisa de algodón",
		ProductVariant: []dto.ProductVariantInput{
			{Option: 1, Value: []string{"Red", "Blue"}},
		},
		ProductPreview: []dto.ProductPreviewInput{
			{Variant: "Red", Price: decimal.RequireFromString("9.99"), Stock: 5},
		},
	}
}

// Flujo feliz: "Red" resuelve al valor creado bajo el producto, slots 2/3
// quedan en NULL y precio/stock se conservan.
func TestCreate_ResuelveSlotUno(t *testing.T) {
	uc, tx := newCreateFixture()

	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)

	// Producto y valores creados
	require.Len(t, tx.products.created, 1)
	require.Len(t, tx.variants.values, 2)

	// Combinación: slot 1 apunta al valor "Red" del producto
	require.Len(t, tx.prices.created, 1)
	combo := tx.prices.created[0]
	require.NotNil(t, combo.ValueOneID)
	redID := tx.variants.values[0].ID
	assert.Equal(t, redID, *combo.ValueOneID)
	assert.Nil(t, combo.ValueTwoID)
	assert.Nil(t, combo.ValueThreeID)
	assert.True(t, combo.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 5, combo.Stock)
	assert.Equal(t, tx.products.created[0].ID, combo.ProductID)
}

// Varios segmentos: "Red/XL" llena los slots 1 y 2 en orden posicional.
func TestCreate_VariosSegmentos(t *testing.T) {
	uc, tx := newCreateFixture()

	req := validRequest()
	req.ProductVariant = append(req.ProductVariant, dto.ProductVariantInput{
		Option: 2, Value: []string{"XL"},
	})
	req.ProductPreview = []dto.ProductPreviewInput{
		{Variant: "Red/XL", Price: decimal.RequireFromString("15.00"), Stock: 2},
	}

	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)

	combo := tx.prices.created[0]
	require.NotNil(t, combo.ValueOneID)
	require.NotNil(t, combo.ValueTwoID)
	assert.Nil(t, combo.ValueThreeID)
}

// Segmento sin match: el slot queda NULL, el alta NO falla y el warning lo reporta.
func TestCreate_SegmentoSinMatchDejaSlotNullConWarning(t *testing.T) {
	uc, tx := newCreateFixture()

	req := validRequest()
	req.ProductPreview = []dto.ProductPreviewInput{
		{Variant: "Red/Inexistente", Price: decimal.RequireFromString("9.99"), Stock: 1},
	}

	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "Inexistente")

	combo := tx.prices.created[0]
	require.NotNil(t, combo.ValueOneID)
	assert.Nil(t, combo.ValueTwoID)
}

// Resolución "más reciente primero": si dos valores comparten texto, gana el de ID mayor.
func TestCreate_ResuelveValorMasReciente(t *testing.T) {
	uc, tx := newCreateFixture()

	req := validRequest()
	req.ProductVariant = []dto.ProductVariantInput{
		{Option: 1, Value: []string{"Red"}},
		{Option: 2, Value: []string{"Red"}}, // mismo texto en otra dimensión
	}

	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	combo := tx.prices.created[0]
	require.NotNil(t, combo.ValueOneID)
	latest := tx.variants.values[len(tx.variants.values)-1].ID
	assert.Equal(t, latest, *combo.ValueOneID)
}

// SKU duplicado: se rechaza con ErrDuplicate y CERO escrituras (la transacción
// nunca se abre).
func TestCreate_SKUDuplicadoRechazaSinEscribir(t *testing.T) {
	uc, tx := newCreateFixture()

	_, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, 1, tx.runs)

	_, err = uc.Create(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// Sin segunda transacción ni filas nuevas
	assert.Equal(t, 1, tx.runs)
	assert.Len(t, tx.products.created, 1)
	assert.Len(t, tx.variants.values, 2)
	assert.Len(t, tx.prices.created, 1)
}

// Campos requeridos faltantes: mensajes por campo, sin transacción.
func TestCreate_CamposRequeridos(t *testing.T) {
	uc, tx := newCreateFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "product_name")
	assert.Contains(t, ve.Fields, "product_sku")
	assert.Contains(t, ve.Fields, "product_description")
	assert.Zero(t, tx.runs)
}

// Precio o stock negativos en la vista previa: validación por campo.
func TestCreate_PrecioYStockNegativos(t *testing.T) {
	uc, tx := newCreateFixture()

	req := validRequest()
	req.ProductPreview = []dto.ProductPreviewInput{
		{Variant: "Red", Price: decimal.RequireFromString("-1"), Stock: -2},
	}

	_, err := uc.Create(context.Background(), req)
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "product_preview.0.price")
	assert.Contains(t, ve.Fields, "product_preview.0.stock")
	assert.Zero(t, tx.runs)
}

// Más de tres segmentos: los extras se ignoran como en el comportamiento heredado.
func TestCreate_MasDeTresSegmentosIgnoraExtras(t *testing.T) {
	uc, tx := newCreateFixture()

	req := validRequest()
	req.ProductVariant = []dto.ProductVariantInput{
		{Option: 1, Value: []string{"A", "B", "C", "D"}},
	}
	req.ProductPreview = []dto.ProductPreviewInput{
		{Variant: "A/B/C/D", Price: decimal.RequireFromString("1.00"), Stock: 1},
	}

	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)

	combo := tx.prices.created[0]
	assert.NotNil(t, combo.ValueOneID)
	assert.NotNil(t, combo.ValueTwoID)
	assert.NotNil(t, combo.ValueThreeID)
}
