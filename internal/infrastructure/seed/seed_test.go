package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	"github.com/jhoicas/stock-manager/internal/infrastructure/seed"
)

var today = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

func TestDemo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	res, err := seed.Demo(ctx, store, today)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Products: 30, Movements: 30}, res)

	products, err := store.Products().List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 30)

	day := today
	todays, err := store.Movements().List(ctx, inventory.MovementFilter{DateFrom: &day, DateTo: &day})
	require.NoError(t, err)
	assert.Len(t, todays, 3)

	d := inventory.ComputeDashboard(products, todays, today)
	assert.Equal(t, 3, d.TodayMovementCount)
	assert.Equal(t, 6, d.LowStockCount)
}

func TestDemo_SkipsWhenNotEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := seed.Demo(ctx, store, today)
	require.NoError(t, err)

	_, err = seed.Demo(ctx, store, today)
	assert.ErrorIs(t, err, seed.ErrNotEmpty)

	n, _ := store.Movements().Count(ctx)
	assert.Equal(t, 30, n)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := seed.Demo(ctx, store, today)
	require.NoError(t, err)

	n, err := seed.Reset(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	count, _ := store.Movements().Count(ctx)
	assert.Zero(t, count)

	_, err = seed.Demo(ctx, store, today)
	assert.NoError(t, err)
}
