package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// StockStatus estado de stock de un producto. Enumeración cerrada de tres variantes.
type StockStatus int

const (
	StatusOK StockStatus = iota
	StatusAlert
	StatusStockout
)

// String devuelve la etiqueta usada en el contrato HTTP y en los exports.
func (s StockStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusAlert:
		return "Alerte"
	case StatusStockout:
		return "Rupture"
	}
	return "desconocido"
}

// Classification resultado de Classify.
type Classification struct {
	Status         StockStatus
	CriticalityPct int // cantidad como % del umbral, máximo 100
}

var hundred = decimal.NewFromInt(100)

// Classify deriva estado y criticidad a partir de cantidad y umbral mínimo.
// Función pura: mismo input, mismo resultado.
func Classify(quantity, minThreshold decimal.Decimal) Classification {
	c := Classification{Status: StatusOK, CriticalityPct: 100}
	switch {
	case quantity.Sign() <= 0:
		c.Status = StatusStockout
	case quantity.LessThan(minThreshold):
		c.Status = StatusAlert
	}
	if minThreshold.Sign() > 0 {
		pct := quantity.Div(minThreshold).Mul(hundred).Round(0)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		c.CriticalityPct = int(pct.IntPart())
	}
	return c
}

// ClassifyProduct atajo de Classify para un producto.
func ClassifyProduct(p *entity.Product) Classification {
	return Classify(p.Quantity, p.MinThreshold)
}

// Severity sub-categoría usada en el resumen de alertas.
type Severity int

const (
	SeverityNone     Severity = iota // OK
	SeverityLow                      // bajo el umbral, criticidad en [25, 100)
	SeverityCritical                 // criticidad < 25
	SeverityStockout                 // cantidad <= 0
)

// criticalBelowPct límite inferior del bucket "Low".
const criticalBelowPct = 25

// SeverityOf clasifica una Classification en su bucket de alerta.
func SeverityOf(c Classification) Severity {
	switch {
	case c.Status == StatusStockout:
		return SeverityStockout
	case c.Status == StatusOK:
		return SeverityNone
	case c.CriticalityPct < criticalBelowPct:
		return SeverityCritical
	}
	return SeverityLow
}

// AlertSummary conteo de productos por bucket de severidad.
type AlertSummary struct {
	Stockout int
	Critical int
	Low      int
}

// Total número de productos con estado distinto de OK.
func (s AlertSummary) Total() int {
	return s.Stockout + s.Critical + s.Low
}

// SummarizeAlerts cuenta los productos de cada bucket.
func SummarizeAlerts(products []*entity.Product) AlertSummary {
	var s AlertSummary
	for _, p := range products {
		switch SeverityOf(ClassifyProduct(p)) {
		case SeverityStockout:
			s.Stockout++
		case SeverityCritical:
			s.Critical++
		case SeverityLow:
			s.Low++
		}
	}
	return s
}

// SortBySeverity devuelve en un slice nuevo los productos con estado distinto de OK,
// del más crítico al menos crítico: rupturas primero, luego criticidad ascendente.
// Los empates conservan el orden del catálogo recibido.
func SortBySeverity(products []*entity.Product) []*entity.Product {
	type ranked struct {
		p        *entity.Product
		stockout bool
		pct      int
	}
	list := make([]ranked, 0, len(products))
	for _, p := range products {
		c := ClassifyProduct(p)
		if c.Status == StatusOK {
			continue
		}
		list = append(list, ranked{p: p, stockout: c.Status == StatusStockout, pct: c.CriticalityPct})
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.stockout != b.stockout {
			return a.stockout
		}
		return a.pct < b.pct
	})
	out := make([]*entity.Product, len(list))
	for i, r := range list {
		out[i] = r.p
	}
	return out
}
