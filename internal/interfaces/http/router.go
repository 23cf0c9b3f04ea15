package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	ExportUC  *usecase.ExportCatalogUseCase
	CreateUC  *usecase.CreateProductUseCase
	VariantUC *usecase.VariantUseCase
	ListPath  string
}

// Router registra las rutas de la API.
// No hay rutas de update ni delete: esos flujos quedan fuera de este servicio
// a propósito (los no-ops del comportamiento heredado no se exponen).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ExportUC)
	productHandler := NewProductHandler(deps.CreateUC, deps.ListPath)
	products.Get("/", catalogHandler.List)
	products.Get("/export", catalogHandler.Export)
	products.Post("/", productHandler.Create)

	variants := api.Group("/variants")
	variantHandler := NewVariantHandler(deps.VariantUC)
	variants.Get("/", variantHandler.List)
}
