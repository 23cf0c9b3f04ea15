// Package pdf implementa el reporte PDF del listado de catálogo: una tabla por
// producto agrupado con sus combinaciones de variante, precio y stock.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CatalogReportGenerator = (*CatalogReportGenerator)(nil)

// CatalogReportGenerator implementa usecase.CatalogReportGenerator usando Maroto v2.
type CatalogReportGenerator struct{}

// NewCatalogReportGenerator construye el generador.
func NewCatalogReportGenerator() *CatalogReportGenerator {
	return &CatalogReportGenerator{}
}

// GenerateCatalogPDF genera el reporte y devuelve sus bytes.
func (g *CatalogReportGenerator) GenerateCatalogPDF(
	_ context.Context,
	products []dto.CatalogProduct,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado de catálogo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(products), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, p := range products {
		m.AddRows(productRow(p))
		m.AddRows(variantHeaderRow())
		for _, r := range variantRows(p.Variants) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y conteo + fecha de generación (der).
func headerRow(count int, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("LISTADO DE CATÁLOGO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%d productos", count), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02-Jan-2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// productRow: título, fecha de creación y descripción del grupo.
func productRow(p dto.CatalogProduct) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(p.Title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Creado: %s   |   %s", p.Created, p.Description), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// variantHeaderRow: cabecera de la tabla de combinaciones.
func variantHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Variante", 6, align.Left),
		h("Precio", 3, align.Right),
		h("Stock", 3, align.Right),
	)
}

// variantRows: una fila por combinación; slots vacíos se muestran con guion.
func variantRows(variants []dto.CatalogVariantRow) []core.Row {
	result := make([]core.Row, 0, len(variants))
	for _, v := range variants {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(
				variantLabel(v),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				priceLabel(v),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				stockLabel(v),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func variantLabel(v dto.CatalogVariantRow) string {
	return fmt.Sprintf("%s / %s / %s",
		nonEmpty(v.VariantOne), nonEmpty(v.VariantTwo), nonEmpty(v.VariantThree))
}

func priceLabel(v dto.CatalogVariantRow) string {
	if v.Price == nil {
		return "—"
	}
	return "$" + v.Price.StringFixed(2)
}

func stockLabel(v dto.CatalogVariantRow) string {
	if v.Stock == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v.Stock)
}

func nonEmpty(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
