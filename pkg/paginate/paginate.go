// Package paginate implementa paginación length-aware sobre una colección ya
// materializada en memoria. El listado de catálogo agrupa filas por producto
// antes de paginar, así que el ítem de página es el grupo completo y el corte
// no puede delegarse a LIMIT/OFFSET en la base.
package paginate

import (
	"fmt"
)

// DefaultPerPage tamaño de página cuando el caller pasa cero.
const DefaultPerPage = 4

// ErrInvalidPerPage perPage negativo: error del caller, no se corrige en silencio.
var ErrInvalidPerPage = fmt.Errorf("paginate: perPage debe ser mayor que cero")

// Page página de resultados con los metadatos necesarios para renderizar
// navegación "página N de M".
type Page[T any] struct {
	Items       []T    `json:"data"`
	Total       int    `json:"total"`
	PerPage     int    `json:"per_page"`
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	From        int    `json:"from"` // ordinal 1-based del primer ítem de la página; 0 si está vacía
	To          int    `json:"to"`   // ordinal del último ítem; 0 si está vacía
	PrevPageURL string `json:"prev_page_url,omitempty"`
	NextPageURL string `json:"next_page_url,omitempty"`
}

// New corta items en la página pedida (1-based).
//   - page < 1 se trata como page = 1
//   - page más allá de la última devuelve Items vacío, no error
//   - perPage == 0 usa DefaultPerPage; perPage < 0 es error del caller
//
// basePath ancla los enlaces prev/next (ej. "/api/products" -> "/api/products?page=2").
func New[T any](items []T, perPage, page int, basePath string) (Page[T], error) {
	if perPage < 0 {
		return Page[T]{}, ErrInvalidPerPage
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	offset := (page - 1) * perPage
	var slice []T
	if offset < total {
		end := offset + perPage
		if end > total {
			end = total
		}
		slice = items[offset:end]
	} else {
		slice = []T{}
	}

	p := Page[T]{
		Items:       slice,
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
	}
	if len(slice) > 0 {
		p.From = offset + 1
		p.To = offset + len(slice)
	}
	if page > 1 {
		p.PrevPageURL = pageURL(basePath, page-1)
	}
	if page < lastPage {
		p.NextPageURL = pageURL(basePath, page+1)
	}
	return p, nil
}

func pageURL(basePath string, page int) string {
	return fmt.Sprintf("%s?page=%d", basePath, page)
}
