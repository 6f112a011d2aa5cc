package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/piotrmaz/nvpApp/internal/application/report"
)

// ReportHandler maneja la descarga del reporte PDF del almacén.
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stockroom godoc
// @Summary      Descargar el reporte PDF del estado del almacén
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stockroom [get]
func (h *ReportHandler) Stockroom(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadStockroomPDF(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
