package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
)

// CatalogHandler maneja el listado de catálogo y su exportación.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
	export  *usecase.ExportCatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, export *usecase.ExportCatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, export: export}
}

// listRequest arma el DTO de filtros desde los query params.
func listRequest(c *fiber.Ctx) dto.ListCatalogRequest {
	return dto.ListCatalogRequest{
		Title:     c.Query("title"),
		Variant:   c.Query("variant"),
		PriceFrom: c.Query("price_from"),
		PriceTo:   c.Query("price_to"),
		Date:      c.Query("date"),
	}
}

// List godoc
// @Summary      Listar catálogo
// @Description  Productos agrupados con sus combinaciones, paginados y filtrables
// @Tags         products
// @Produce      json
// @Param        title       query  string  false  "Substring del título"
// @Param        variant     query  string  false  "Substring de valor de variante (cualquier slot)"
// @Param        price_from  query  number  false  "Límite inferior de precio (requiere price_to)"
// @Param        price_to    query  number  false  "Límite superior de precio (requiere price_from)"
// @Param        date        query  string  false  "Creado en o después de (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página (1-based)"  default(1)
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	filters, err := listRequest(c).Filters()
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "filtros inválidos", Fields: ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	page := c.QueryInt("page", 1)

	out, err := h.catalog.List(c.Context(), filters, page)
	if err != nil {
		ReqLogger(c).Error().Err(err).Msg("listar catálogo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo en PDF
// @Description  El mismo listado filtrado y agrupado, sin paginar, como reporte PDF
// @Tags         products
// @Produce      application/pdf
// @Param        title       query  string  false  "Substring del título"
// @Param        variant     query  string  false  "Substring de valor de variante"
// @Param        price_from  query  number  false  "Límite inferior de precio"
// @Param        price_to    query  number  false  "Límite superior de precio"
// @Param        date        query  string  false  "Creado en o después de (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export [get]
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	filters, err := listRequest(c).Filters()
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "filtros inválidos", Fields: ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	pdf, err := h.export.Export(c.Context(), filters)
	if err != nil {
		ReqLogger(c).Error().Err(err).Msg("exportar catálogo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalog.pdf"`)
	return c.Send(pdf)
}
