package report

import (
	"context"
	"fmt"
	"time"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// StockroomPDFGenerator puerto de generación del reporte PDF del almacén.
type StockroomPDFGenerator interface {
	GenerateStockroomPDF(
		ctx context.Context,
		consumables []*entity.Consumable,
		packages []*entity.Package,
		generatedAt time.Time,
	) ([]byte, error)
}

// PDFUseCase genera el reporte PDF del estado del almacén: consumibles con
// su saldo (resaltando stock bajo) y empaques con sus cubetas.
type PDFUseCase struct {
	consumableRepo repository.ConsumableRepository
	packageRepo    repository.PackageRepository
	generator      StockroomPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	consumableRepo repository.ConsumableRepository,
	packageRepo repository.PackageRepository,
	generator StockroomPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{consumableRepo: consumableRepo, packageRepo: packageRepo, generator: generator}
}

// reportPageSize tope de filas por sección del reporte.
const reportPageSize = 500

// DownloadStockroomPDF arma el reporte con el estado actual y devuelve sus
// bytes junto con el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadStockroomPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	consumables, err := uc.consumableRepo.List(reportPageSize, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar consumibles: %w", err)
	}
	packages, err := uc.packageRepo.List(reportPageSize, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar empaques: %w", err)
	}

	now := time.Now()
	pdfBytes, err = uc.generator.GenerateStockroomPDF(ctx, consumables, packages, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("almacen_%s.pdf", now.Format("20060102_150405"))
	return pdfBytes, filename, nil
}
