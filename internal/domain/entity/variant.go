package entity

import (
	"github.com/shopspring/decimal"
)

// VariantDimension eje de variación con nombre (ej. "Color", "Size").
type VariantDimension struct {
	ID    int64
	Title string
}

// VariantValue valor concreto de una dimensión, creado bajo un producto
// específico (ej. "Red" de "Color" para el producto X).
type VariantValue struct {
	ID        int64
	VariantID int64 // dimensión a la que pertenece
	Value     string
	ProductID int64
}

// PriceCombination combinación de hasta tres valores de variante con precio y
// stock para un producto. Los slots son posicionales: el mismo valor físico
// puede ocupar el slot 1 en un producto y el 2 en otro.
type PriceCombination struct {
	ID           int64
	ProductID    int64
	ValueOneID   *int64
	ValueTwoID   *int64
	ValueThreeID *int64
	Price        decimal.Decimal
	Stock        int
}
