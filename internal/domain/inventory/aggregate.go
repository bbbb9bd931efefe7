package inventory

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// Dashboard KPIs derivados del catálogo y del libro de movimientos.
type Dashboard struct {
	TotalProducts      int
	LowStockCount      int // quantity < min_threshold
	TodayMovementCount int // movimientos con fecha == asOf
	TotalStockValue    decimal.Decimal
}

// ComputeDashboard calcula los KPIs del dashboard.
// TotalStockValue se acumula con precisión completa; el redondeo a 2 decimales
// se hace solo al presentar.
func ComputeDashboard(products []*entity.Product, movements []*entity.Movement, asOf time.Time) Dashboard {
	d := Dashboard{TotalProducts: len(products), TotalStockValue: decimal.Zero}
	for _, p := range products {
		if p.Quantity.LessThan(p.MinThreshold) {
			d.LowStockCount++
		}
		d.TotalStockValue = d.TotalStockValue.Add(p.StockValue())
	}
	day := entity.DateOf(asOf)
	for _, m := range movements {
		if entity.DateOf(m.Date).Equal(day) {
			d.TodayMovementCount++
		}
	}
	return d
}

// RecentMovements devuelve los n movimientos más recientes en orden canónico
// (fecha desc, id desc). n <= 0 devuelve todos.
func RecentMovements(movements []*entity.Movement, n int) []*entity.Movement {
	ordered := slices.Clone(movements)
	SortMovements(ordered)
	return head(ordered, n)
}

// AlertProducts devuelve los primeros n productos con estado distinto de OK,
// en orden de catálogo (no por severidad). n <= 0 devuelve todos.
func AlertProducts(products []*entity.Product, n int) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if ClassifyProduct(p).Status == StatusOK {
			continue
		}
		out = append(out, p)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// TopByQuantity devuelve los n productos con mayor cantidad; empates en orden de catálogo.
func TopByQuantity(products []*entity.Product, n int) []*entity.Product {
	ordered := slices.Clone(products)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Quantity.GreaterThan(ordered[j].Quantity)
	})
	return head(ordered, n)
}

func head[T any](list []T, n int) []T {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}
