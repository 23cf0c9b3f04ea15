package dto

import (
	"github.com/shopspring/decimal"
)

// ProductVariantInput valores seleccionados para una dimensión en el alta de producto.
type ProductVariantInput struct {
	Option int64    `json:"option"` // ID de la dimensión
	Value  []string `json:"value"`  // textos de valor a crear bajo el producto
}

// ProductPreviewInput combinación de la vista previa: valores separados por "/",
// con precio y stock.
type ProductPreviewInput struct {
	Variant string          `json:"variant"` // ej. "Red/XL/Cotton"
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
}

// CreateProductRequest payload del alta de producto con sus variantes y precios.
type CreateProductRequest struct {
	ProductName        string                `json:"product_name"`
	ProductSKU         string                `json:"product_sku"`
	ProductDescription string                `json:"product_description"`
	ProductVariant     []ProductVariantInput `json:"product_variant"`
	ProductPreview     []ProductPreviewInput `json:"product_preview"`
}

// CreateProductResponse resultado del alta. Warnings lista los segmentos de
// vista previa que no resolvieron a ningún valor del producto (se guardaron
// como NULL en su slot, modo best-effort).
type CreateProductResponse struct {
	ID       int64    `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

// DimensionResponse dimensión de variante para el formulario de alta.
type DimensionResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
