package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/domain"
	"github.com/rezabtuhin/catalog-admin/internal/domain/entity"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// El alta de producto (producto -> valores de variante -> combinaciones) es un
// único límite transaccional: si algo falla no queda nada escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		variantRepo repository.VariantRepository,
		priceRepo repository.PriceCombinationRepository,
	) error) error
}

// CreateProductUseCase alta de producto con sus valores de variante y
// combinaciones de precio.
type CreateProductUseCase struct {
	tx       TxRunner
	products repository.ProductRepository // atado al pool, para la pre-verificación de SKU
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(tx TxRunner, products repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{tx: tx, products: products}
}

// Create valida el payload y ejecuta el alta completa en una transacción.
// Los segmentos de vista previa que no resuelven a un valor del producto se
// guardan como NULL en su slot y se reportan en Warnings (modo best-effort
// observable, no un fallo del alta completa).
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}

	var out dto.CreateProductResponse
	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		variantRepo repository.VariantRepository,
		priceRepo repository.PriceCombinationRepository,
	) error {
		product := &entity.Product{
			Title:       in.ProductName,
			SKU:         in.ProductSKU,
			Description: in.ProductDescription,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		out.ID = product.ID

		for _, variant := range in.ProductVariant {
			for _, value := range variant.Value {
				vv := &entity.VariantValue{
					VariantID: variant.Option,
					Value:     value,
					ProductID: product.ID,
				}
				if err := variantRepo.CreateValue(ctx, vv); err != nil {
					return err
				}
			}
		}

		for _, preview := range in.ProductPreview {
			combo := &entity.PriceCombination{
				ProductID: product.ID,
				Price:     preview.Price,
				Stock:     preview.Stock,
			}
			warnings, err := resolveSlots(ctx, variantRepo, product.ID, preview.Variant, combo)
			if err != nil {
				return err
			}
			out.Warnings = append(out.Warnings, warnings...)
			if err := priceRepo.Create(ctx, combo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// validate aplica las reglas de campo y la unicidad de SKU antes de abrir la
// transacción: ningún error de validación acompaña una escritura parcial.
func (uc *CreateProductUseCase) validate(ctx context.Context, in dto.CreateProductRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.ProductName) == "" {
		fields["product_name"] = "es requerido"
	}
	if strings.TrimSpace(in.ProductSKU) == "" {
		fields["product_sku"] = "es requerido"
	}
	if strings.TrimSpace(in.ProductDescription) == "" {
		fields["product_description"] = "es requerido"
	}
	for i, preview := range in.ProductPreview {
		if preview.Price.IsNegative() {
			fields[fmt.Sprintf("product_preview.%d.price", i)] = "no puede ser negativo"
		}
		if preview.Stock < 0 {
			fields[fmt.Sprintf("product_preview.%d.stock", i)] = "no puede ser negativo"
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}

	// Unicidad de SKU: la pre-verificación da el error amigable; la carrera
	// perdida contra otra alta concurrente la captura el constraint único y
	// sale como el mismo ErrDuplicate desde el repositorio.
	existing, err := uc.products.GetBySKU(ctx, in.ProductSKU)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	return nil
}

// resolveSlots parte el string "A/B/C" y resuelve cada segmento al valor más
// recientemente creado del producto, llenando los slots 1..3 posicionalmente.
// Segmentos sin match dejan su slot en NULL y generan un warning; segmentos
// más allá del tercero se ignoran como en el comportamiento heredado. Un fallo
// de consulta sí aborta el alta: solo la ausencia de match es best-effort.
func resolveSlots(ctx context.Context, variants repository.VariantRepository, productID int64, raw string, combo *entity.PriceCombination) ([]string, error) {
	var warnings []string
	var slots [3]*int64
	segments := strings.Split(strings.Trim(raw, "/"), "/")

	for i, segment := range segments {
		if i >= len(slots) {
			break
		}
		if segment == "" {
			continue
		}
		id, err := variants.ResolveValue(ctx, productID, segment)
		if err != nil {
			return nil, err
		}
		if id == nil {
			warnings = append(warnings, fmt.Sprintf("valor de variante %q no existe para el producto; slot %d queda vacío", segment, i+1))
			continue
		}
		slots[i] = id
	}
	combo.ValueOneID, combo.ValueTwoID, combo.ValueThreeID = slots[0], slots[1], slots[2]
	return warnings, nil
}
