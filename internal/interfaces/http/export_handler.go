package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// ExportHandler descargas CSV y PDF.
type ExportHandler struct {
	uc  *report.ReportUseCase
	err errorResponder
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ReportUseCase, errs errorResponder) *ExportHandler {
	return &ExportHandler{uc: uc, err: errs}
}

// MovementsCSV godoc
// @Summary      Exportar historial en CSV (mismos filtros que /api/movements)
// @Tags         exports
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/movements/export.csv [get]
func (h *ExportHandler) MovementsCSV(c *fiber.Ctx) error {
	q, err := movementQuery(c)
	if err != nil {
		return h.err.write(c, err)
	}
	var buf bytes.Buffer
	if err := h.uc.MovementsCSV(c.UserContext(), &buf, q); err != nil {
		return h.err.write(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", report.Filename("mouvements", entity.Today(), "csv"), buf.Bytes())
}

// ProductsCSV godoc
// @Summary      Exportar catálogo en CSV
// @Tags         exports
// @Produce      text/csv
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {file}  file
// @Router       /api/products/export.csv [get]
func (h *ExportHandler) ProductsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ProductsCSV(c.UserContext(), &buf, c.Query("category")); err != nil {
		return h.err.write(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", report.Filename("stock", entity.Today(), "csv"), buf.Bytes())
}

// ProductsPDF godoc
// @Summary      Informe de stock en PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/products/export.pdf [get]
func (h *ExportHandler) ProductsPDF(c *fiber.Ctx) error {
	asOf, err := asOfDate(c)
	if err != nil {
		return h.err.write(c, err)
	}
	pdfBytes, filename, err := h.uc.ProductsPDF(c.UserContext(), asOf)
	if err != nil {
		return h.err.write(c, err)
	}
	return sendFile(c, "application/pdf", filename, pdfBytes)
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
