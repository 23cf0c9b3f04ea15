package postgres

import (
	"fmt"
	"strings"

	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

// compileFilters compila los filtros validados en una cláusula WHERE y sus
// argumentos, en una sola pasada sobre una lista de predicados. Los filtros se
// componen con AND; el filtro de variante es un OR sobre los tres slots. El
// rango de precio solo entra cuando ambos límites están presentes.
func compileFilters(f repository.CatalogFilters) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.TitleContains != "" {
		conds = append(conds, fmt.Sprintf("p.title ILIKE %s", arg("%"+f.TitleContains+"%")))
	}
	if f.VariantContains != "" {
		p := arg("%" + f.VariantContains + "%")
		conds = append(conds, fmt.Sprintf("(v1.value ILIKE %s OR v2.value ILIKE %s OR v3.value ILIKE %s)", p, p, p))
	}
	if f.PriceActive() {
		from := arg(*f.PriceFrom)
		to := arg(*f.PriceTo)
		conds = append(conds, fmt.Sprintf("pc.price BETWEEN %s AND %s", from, to))
	}
	if f.CreatedOnOrAfter != nil {
		conds = append(conds, fmt.Sprintf("p.created_at::date >= %s", arg(*f.CreatedOnOrAfter)))
	}

	return strings.Join(conds, " AND "), args
}
