package report

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

// TableWriter serializa catálogo y movimientos como tabla (CSV).
type TableWriter interface {
	WriteMovements(w io.Writer, movements []*entity.Movement) error
	WriteProducts(w io.Writer, products []*entity.Product) error
}

// StockReportGenerator genera el informe de stock imprimible (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, r StockReport) ([]byte, error)
}

// StockReport datos ya calculados del informe; el generador solo los maqueta.
type StockReport struct {
	Title      string
	AsOf       time.Time
	Lines      []StockReportLine // orden de catálogo
	Alerts     inventory.AlertSummary
	TotalValue decimal.Decimal // sin redondear
}

// StockReportLine una fila del informe.
type StockReportLine struct {
	Product        *entity.Product
	Status         inventory.StockStatus
	CriticalityPct int
	Value          decimal.Decimal
}
