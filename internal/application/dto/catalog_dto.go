package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezabtuhin/catalog-admin/internal/domain"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
	"github.com/rezabtuhin/catalog-admin/pkg/paginate"
)

// ListCatalogRequest query params del listado, tal como llegan del request.
type ListCatalogRequest struct {
	Title     string `query:"title"`
	Variant   string `query:"variant"`
	PriceFrom string `query:"price_from"`
	PriceTo   string `query:"price_to"`
	Date      string `query:"date"`
}

// Filters valida y convierte los parámetros crudos en filtros tipados. Fecha
// malformada o límites de precio no numéricos se rechazan aquí, antes de tocar
// la base. Un solo límite de precio no es error: deja el filtro inactivo.
func (r ListCatalogRequest) Filters() (repository.CatalogFilters, error) {
	fields := map[string]string{}
	f := repository.CatalogFilters{
		TitleContains:   r.Title,
		VariantContains: r.Variant,
	}

	if r.PriceFrom != "" {
		d, err := decimal.NewFromString(r.PriceFrom)
		if err != nil {
			fields["price_from"] = "debe ser numérico"
		} else {
			f.PriceFrom = &d
		}
	}
	if r.PriceTo != "" {
		d, err := decimal.NewFromString(r.PriceTo)
		if err != nil {
			fields["price_to"] = "debe ser numérico"
		} else {
			f.PriceTo = &d
		}
	}
	if r.Date != "" {
		t, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			fields["date"] = "debe tener formato YYYY-MM-DD"
		} else {
			f.CreatedOnOrAfter = &t
		}
	}

	if len(fields) > 0 {
		return repository.CatalogFilters{}, domain.NewValidationError(fields)
	}
	return f, nil
}

// CatalogVariantRow fila de combinación dentro de un grupo de producto.
type CatalogVariantRow struct {
	VariantOne   *string          `json:"product_variant_one"`
	VariantTwo   *string          `json:"product_variant_two"`
	VariantThree *string          `json:"product_variant_three"`
	Price        *decimal.Decimal `json:"price"`
	Stock        *int             `json:"stock"`
}

// CatalogProduct entrada visible del listado: un grupo de filas que comparten
// título, con su lista de combinaciones.
type CatalogProduct struct {
	Title       string              `json:"title"`
	Created     string              `json:"created"` // formato 02-Jan-2006
	Description string              `json:"description"`
	Variants    []CatalogVariantRow `json:"variants"`
}

// VariantOptionGroup valores distintos de variante agrupados por dimensión,
// fuente del dropdown de filtro.
type VariantOptionGroup struct {
	Dimension string   `json:"dimension"`
	Values    []string `json:"values"`
}

// CatalogListResponse respuesta del listado: conteo total de grupos, página de
// productos agrupados y opciones de variante para el filtro.
type CatalogListResponse struct {
	Count          int                           `json:"count"`
	Products       paginate.Page[CatalogProduct] `json:"products"`
	VariantOptions []VariantOptionGroup          `json:"variant_options"`
}

// FormatCreated formatea la fecha de creación como la muestra el listado.
func FormatCreated(t time.Time) string {
	return t.Format("02-Jan-2006")
}
