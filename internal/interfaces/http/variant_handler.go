package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
)

// VariantHandler lectura de dimensiones de variante.
type VariantHandler struct {
	uc *usecase.VariantUseCase
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *usecase.VariantUseCase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// List godoc
// @Summary      Listar dimensiones de variante
// @Description  Fuente del formulario de alta de producto
// @Tags         variants
// @Produce      json
// @Success      200  {array}  dto.DimensionResponse
// @Router       /api/variants [get]
func (h *VariantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListDimensions(c.Context())
	if err != nil {
		ReqLogger(c).Error().Err(err).Msg("listar dimensiones")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
