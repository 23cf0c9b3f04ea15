package usecase

import (
	"context"
	"time"

	"github.com/rezabtuhin/catalog-admin/internal/application/dto"
	"github.com/rezabtuhin/catalog-admin/internal/domain/repository"
)

// CatalogReportGenerator puerto de generación del reporte PDF del listado.
type CatalogReportGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []dto.CatalogProduct, generatedAt time.Time) ([]byte, error)
}

// ExportCatalogUseCase exporta el listado filtrado y agrupado (sin paginar)
// como reporte PDF.
type ExportCatalogUseCase struct {
	reader    repository.CatalogReader
	generator CatalogReportGenerator
}

// NewExportCatalogUseCase construye el caso de uso.
func NewExportCatalogUseCase(reader repository.CatalogReader, generator CatalogReportGenerator) *ExportCatalogUseCase {
	return &ExportCatalogUseCase{reader: reader, generator: generator}
}

// Export aplica los mismos filtros y agrupación del listado y entrega el PDF.
func (uc *ExportCatalogUseCase) Export(ctx context.Context, filters repository.CatalogFilters) ([]byte, error) {
	rows, err := uc.reader.ListRows(ctx, filters)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(ctx, GroupRows(rows), time.Now())
}
