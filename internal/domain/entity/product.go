package entity

import (
	"time"
)

// Product representa un producto del catálogo.
// SKU es único a nivel global; los valores de variante y las combinaciones de
// precio cuelgan del producto y se crean junto con él.
type Product struct {
	ID          int64
	Title       string
	SKU         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
