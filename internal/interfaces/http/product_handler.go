package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
)

// ProductHandler maneja el alta de productos.
type ProductHandler struct {
	create   *usecase.CreateProductUseCase
	listPath string // destino del Location tras un alta exitosa
}

// NewProductHandler construye el handler.
func NewProductHandler(create *usecase.CreateProductUseCase, listPath string) *ProductHandler {
	return &ProductHandler{create: create, listPath: listPath}
}

// Create godoc
// @Summary      Crear producto con variantes y precios
// @Description  Alta transaccional: producto, valores de variante y combinaciones de precio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.create.Create(c.Context(), in)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "datos del producto inválidos", Fields: ve.Fields,
			})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "DUPLICATE", Message: "el SKU ya existe",
				Fields: map[string]string{"product_sku": "el SKU ya existe"},
			})
		}
		ReqLogger(c).Error().Err(err).Msg("crear producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	if len(out.Warnings) > 0 {
		ReqLogger(c).Warn().Strs("warnings", out.Warnings).Int64("product_id", out.ID).Msg("alta con valores sin resolver")
	}

	// El flujo heredado redirige al listado; como API JSON se señala el
	// destino en Location y se devuelve el resultado del alta.
	c.Set(fiber.HeaderLocation, h.listPath)
	return c.Status(fiber.StatusCreated).JSON(out)
}
