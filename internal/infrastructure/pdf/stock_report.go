// Package pdf genera el informe de stock imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha       │  Totales (productos, valor)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: Rupture / Critique / Bas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Produit | Catégorie | Quantité | Seuil | Valeur | St │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valeur du stock                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 214, Green: 120, Blue: 0}
	colorDanger  = &props.Color{Red: 190, Green: 30, Blue: 45}
)

var _ report.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	author string
}

// NewMarotoStockReport construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoStockReport(author string) *MarotoStockReport {
	return &MarotoStockReport{author: author}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, r report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(alertsRow(r.Alerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r report.StockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Au "+r.AsOf.Format("02/01/2006"), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%d produits", len(r.Lines)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Valeur totale: "+formatEuro(r.TotalValue.StringFixed(2)), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func alertsRow(s inventory.AlertSummary) core.Row {
	cell := func(label string, n int, c *props.Color) core.Col {
		return col.New(4).Add(text.New(fmt.Sprintf("%s: %d", label, n), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: c, Top: 2,
		}))
	}
	return row.New(9).Add(
		cell("Rupture", s.Stockout, colorDanger),
		cell("Critique", s.Critical, colorAlert),
		cell("Bas", s.Low, colorGray),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produit", 4, align.Left),
		h("Catégorie", 2, align.Left),
		h("Quantité", 2, align.Right),
		h("Seuil", 1, align.Right),
		h("Valeur", 2, align.Right),
		h("Statut", 1, align.Center),
	)
}

func tableRows(lines []report.StockReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		p := l.Product
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(p.Category), props.Text{Size: 7, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(p.Quantity.String()+" "+p.Unit, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(p.MinThreshold.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(formatEuro(l.Value.StringFixed(2)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(l.Status.String(), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1, Color: statusColor(l.Status),
			})),
		))
	}
	return result
}

func totalRow(r report.StockReport) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("VALEUR DU STOCK", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(formatEuro(r.TotalValue.StringFixed(2)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(s inventory.StockStatus) *props.Color {
	switch s {
	case inventory.StatusStockout:
		return colorDanger
	case inventory.StatusAlert:
		return colorAlert
	}
	return colorGray
}

// formatEuro formatea un decimal con 2 cifras al estilo francés.
// Ej: "1234567.50" → "1 234 567,50 €"
func formatEuro(s string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	out := string(buf)
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out + " €"
}
