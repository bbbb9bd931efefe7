// Package analytics contiene los casos de uso del dashboard de stock.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

// DefaultWidgetSize número de filas de cada widget cuando el cliente no indica limit.
const DefaultWidgetSize = 5

// DashboardUseCase calcula los KPIs y widgets del dashboard.
//
// Fuente de datos: repositorios de productos y movimientos (solo lectura).
// Los cálculos viven en domain/inventory; aquí solo se cargan los datos y se arma el DTO.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

type snapshot struct {
	products  []*entity.Product
	movements []*entity.Movement
}

// load lee catálogo y libro en paralelo.
func (uc *DashboardUseCase) load(ctx context.Context, movFilter inventory.MovementFilter) (*snapshot, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx, repository.ProductFilter{})
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movementRepo.List(ctx, movFilter)
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}
	return &snapshot{products: products.list, movements: movements.list}, nil
}

// Stats KPIs a la fecha asOf. Solo se cargan los movimientos de ese día.
func (uc *DashboardUseCase) Stats(ctx context.Context, asOf time.Time) (*dto.DashboardStatsResponse, error) {
	day := entity.DateOf(asOf)
	snap, err := uc.load(ctx, inventory.MovementFilter{DateFrom: &day, DateTo: &day})
	if err != nil {
		return nil, err
	}
	d := inventory.ComputeDashboard(snap.products, snap.movements, day)
	return &dto.DashboardStatsResponse{
		TotalProducts:   d.TotalProducts,
		LowStockCount:   d.LowStockCount,
		TodayMovements:  d.TodayMovementCount,
		TotalStockValue: d.TotalStockValue.StringFixed(2),
		Date:            entity.FormatDate(day),
		DateLabel:       dayLabel(day),
	}, nil
}

// Widgets últimos movimientos, productos en alerta (orden de catálogo) y top por cantidad.
// n <= 0 usa DefaultWidgetSize.
func (uc *DashboardUseCase) Widgets(ctx context.Context, n int) (*dto.DashboardWidgetsResponse, error) {
	if n <= 0 {
		n = DefaultWidgetSize
	}
	snap, err := uc.load(ctx, inventory.MovementFilter{Limit: n})
	if err != nil {
		return nil, err
	}
	return &dto.DashboardWidgetsResponse{
		RecentMovements: dto.NewMovementList(inventory.RecentMovements(snap.movements, n)),
		AlertProducts:   dto.NewProductList(inventory.AlertProducts(snap.products, n)),
		TopByQuantity:   dto.NewProductList(inventory.TopByQuantity(snap.products, n)),
	}, nil
}

// dayLabel devuelve la fecha legible en francés, ej: "jeudi 12 mars 2026".
func dayLabel(t time.Time) string {
	days := [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	months := [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
	return fmt.Sprintf("%s %d %s %d", days[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}
