package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// ProductFilter opciones de listado del catálogo. Valor cero = sin restricción.
type ProductFilter struct {
	Category entity.Category
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve el catálogo en su orden canónico (nombre, luego id).
type ProductRepository interface {
	// Create asigna ID, CreatedAt y UpdatedAt.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate como GetByID pero bloquea el producto hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity solo la usa el motor de inventario.
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Delete elimina el producto y sus movimientos. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
