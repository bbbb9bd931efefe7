package repository

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
// No hay Update: los movimientos son inmutables.
type MovementRepository interface {
	// Create asigna un ID monótono y CreatedAt.
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve los movimientos que cumplen filter en orden canónico (fecha desc, id desc).
	List(ctx context.Context, filter inventory.MovementFilter) ([]*entity.Movement, error)
	Count(ctx context.Context) (int, error)
}
