package inventory

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso: el motor de inventario
// nunca deja un movimiento sin su ajuste de stock ni al revés.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
