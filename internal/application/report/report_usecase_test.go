package report_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/infrastructure/csvexport"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
)

var asOf = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

type fakePDF struct {
	got report.StockReport
	err error
}

func (f *fakePDF) GenerateStockReport(_ context.Context, r report.StockReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), f.err
}

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	for _, p := range []*entity.Product{
		{Name: "Riz", Category: entity.CategoryGrocery, Quantity: decimal.NewFromInt(10), Unit: "kg", MinThreshold: decimal.NewFromInt(5), PricePerUnit: decimal.RequireFromString("1.10")},
		{Name: "Lait", Category: entity.CategoryDairy, Quantity: decimal.Zero, Unit: "L", MinThreshold: decimal.NewFromInt(5), PricePerUnit: decimal.NewFromInt(1)},
	} {
		require.NoError(t, store.Products().Create(ctx, p))
		require.NoError(t, store.Movements().Create(ctx, &entity.Movement{
			ProductID: p.ID, ProductName: p.Name, Type: entity.MovementTypeReceipt,
			Quantity: decimal.NewFromInt(1), Date: asOf,
		}))
	}
	return store
}

func TestProductsPDF(t *testing.T) {
	store := seeded(t)
	gen := &fakePDF{}
	uc := report.NewReportUseCase(store.Products(), store.Movements(), csvexport.NewWriter(), gen)

	out, name, err := uc.ProductsPDF(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "stock_2026-03-12.pdf", name)

	require.Len(t, gen.got.Lines, 2)
	assert.Equal(t, "Lait", gen.got.Lines[0].Product.Name)
	assert.Equal(t, inventory.StatusStockout, gen.got.Lines[0].Status)
	assert.True(t, gen.got.TotalValue.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, 1, gen.got.Alerts.Stockout)
}

func TestProductsPDF_GeneratorError(t *testing.T) {
	store := seeded(t)
	uc := report.NewReportUseCase(store.Products(), store.Movements(), csvexport.NewWriter(), &fakePDF{err: errors.New("boom")})
	_, _, err := uc.ProductsPDF(context.Background(), asOf)
	assert.Error(t, err)
}

func TestProductsCSV(t *testing.T) {
	store := seeded(t)
	uc := report.NewReportUseCase(store.Products(), store.Movements(), csvexport.NewWriter(), nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ProductsCSV(context.Background(), &buf, "Épicerie"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\r\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Riz;"))

	err := uc.ProductsCSV(context.Background(), &buf, "Boulangerie")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.ProductsPDF(context.Background(), asOf)
	assert.Error(t, err, "sin generador PDF")
}

func TestMovementsCSV(t *testing.T) {
	store := seeded(t)
	uc := report.NewReportUseCase(store.Products(), store.Movements(), csvexport.NewWriter(), nil)

	var buf bytes.Buffer
	require.NoError(t, uc.MovementsCSV(context.Background(), &buf, dto.MovementQuery{ProductName: "Lait"}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-03-12;Lait;Entrée;1;", lines[1])

	err := uc.MovementsCSV(context.Background(), &buf, dto.MovementQuery{Type: "Autre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mouvements_2026-03-12.csv", report.Filename("mouvements", asOf, "csv"))
}
