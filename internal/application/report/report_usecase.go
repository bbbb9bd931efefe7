// Package report exporta el catálogo y el historial (CSV, PDF).
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	appinv "github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

// StockReportTitle título del informe PDF.
const StockReportTitle = "État du stock"

// ReportUseCase arma los exports a partir de los repositorios.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	table        TableWriter
	pdf          StockReportGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil (export PDF deshabilitado).
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	table TableWriter,
	pdf StockReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		table:        table,
		pdf:          pdf,
	}
}

// MovementsCSV escribe en w el historial filtrado (mismos filtros que GET /api/movements).
func (uc *ReportUseCase) MovementsCSV(ctx context.Context, w io.Writer, q dto.MovementQuery) error {
	filter, err := appinv.ParseMovementQuery(q)
	if err != nil {
		return err
	}
	list, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("report: movimientos: %w", err)
	}
	return uc.table.WriteMovements(w, list)
}

// ProductsCSV escribe en w el catálogo (opcionalmente una sola categoría).
func (uc *ReportUseCase) ProductsCSV(ctx context.Context, w io.Writer, category string) error {
	list, err := uc.listProducts(ctx, category)
	if err != nil {
		return err
	}
	return uc.table.WriteProducts(w, list)
}

// ProductsPDF genera el informe de stock a la fecha asOf.
// Retorna los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) ProductsPDF(ctx context.Context, asOf time.Time) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("report: generador PDF no configurado")
	}
	list, err := uc.listProducts(ctx, "")
	if err != nil {
		return nil, "", err
	}
	r := BuildStockReport(list, asOf)
	pdfBytes, err := uc.pdf.GenerateStockReport(ctx, r)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, Filename("stock", asOf, "pdf"), nil
}

func (uc *ReportUseCase) listProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	var filter repository.ProductFilter
	if category != "" {
		cat, err := entity.ParseCategory(category)
		if err != nil {
			return nil, domain.Invalid("%s", err.Error())
		}
		filter.Category = cat
	}
	list, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: productos: %w", err)
	}
	return list, nil
}

// BuildStockReport clasifica cada producto y acumula el valor total con precisión completa.
func BuildStockReport(products []*entity.Product, asOf time.Time) StockReport {
	r := StockReport{
		Title:  StockReportTitle,
		AsOf:   entity.DateOf(asOf),
		Lines:  make([]StockReportLine, 0, len(products)),
		Alerts: inventory.SummarizeAlerts(products),
	}
	for _, p := range products {
		c := inventory.ClassifyProduct(p)
		v := p.StockValue()
		r.Lines = append(r.Lines, StockReportLine{
			Product:        p,
			Status:         c.Status,
			CriticalityPct: c.CriticalityPct,
			Value:          v,
		})
		r.TotalValue = r.TotalValue.Add(v)
	}
	return r
}

// Filename nombre de archivo de export, ej: "mouvements_2026-03-12.csv".
func Filename(prefix string, asOf time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, entity.FormatDate(asOf), ext)
}
