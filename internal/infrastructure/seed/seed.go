// Package seed carga el catálogo de demostración: 30 productos de cantine scolaire y
// 30 movimientos repartidos en las dos últimas semanas.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

// ErrNotEmpty el almacén ya tiene productos; la carga se omite.
var ErrNotEmpty = errors.New("seed: el almacén ya contiene productos")

// Result conteo de lo insertado.
type Result struct {
	Products  int
	Movements int
}

// Demo inserta el catálogo y su historial en una sola transacción. today fija la fecha de
// referencia de los movimientos (days ago). Los movimientos son históricos: se registran tal
// cual, sin volver a aplicar sus cantidades al stock.
func Demo(ctx context.Context, runner inventory.TxRunner, today time.Time) (Result, error) {
	var res Result
	err := runner.Run(ctx, func(products repository.ProductRepository, movs repository.MovementRepository) error {
		existing, err := products.List(ctx, repository.ProductFilter{})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w (%d productos)", ErrNotEmpty, len(existing))
		}

		byName := make(map[string]*entity.Product, len(demoProducts))
		for _, d := range demoProducts {
			p := &entity.Product{
				Name:         d.name,
				Category:     d.category,
				Quantity:     decimal.RequireFromString(d.quantity),
				Unit:         d.unit,
				MinThreshold: decimal.RequireFromString(d.threshold),
				PricePerUnit: decimal.RequireFromString(d.price),
			}
			if err := products.Create(ctx, p); err != nil {
				return fmt.Errorf("seed: producto %q: %w", d.name, err)
			}
			byName[p.Name] = p
			res.Products++
		}

		day := entity.DateOf(today)
		for _, d := range demoMovements {
			p, ok := byName[d.product]
			if !ok {
				return fmt.Errorf("seed: producto desconocido %q", d.product)
			}
			comment := d.comment
			m := &entity.Movement{
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        d.typ,
				Quantity:    decimal.RequireFromString(d.qty),
				Date:        day.AddDate(0, 0, -d.daysAgo),
				Comment:     &comment,
			}
			if err := movs.Create(ctx, m); err != nil {
				return fmt.Errorf("seed: movimiento de %q: %w", d.product, err)
			}
			res.Movements++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Reset elimina todos los productos (y por cascada sus movimientos).
func Reset(ctx context.Context, runner inventory.TxRunner) (int, error) {
	var n int
	err := runner.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		list, err := products.List(ctx, repository.ProductFilter{})
		if err != nil {
			return err
		}
		for _, p := range list {
			if err := products.Delete(ctx, p.ID); err != nil {
				return err
			}
		}
		n = len(list)
		return nil
	})
	return n, err
}
