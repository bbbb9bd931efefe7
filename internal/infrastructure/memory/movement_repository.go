package memory

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos en memoria (solo append).
type MovementRepo struct {
	store *Store
	tx    *state
}

// Create asigna el siguiente ID y CreatedAt. El producto debe existir.
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	return r.store.write(r.tx, func(st *state) error {
		if _, ok := st.products[movement.ProductID]; !ok {
			return domain.ErrNotFound
		}
		movement.ID = st.nextMovementID
		movement.CreatedAt = r.store.now()
		st.nextMovementID++
		cp := *movement
		st.movements = append(st.movements, &cp)
		return nil
	})
}

// List aplica el filtro de historial sobre el libro completo.
func (r *MovementRepo) List(_ context.Context, filter inventory.MovementFilter) ([]*entity.Movement, error) {
	out := []*entity.Movement{}
	err := r.store.read(r.tx, func(st *state) error {
		for m := range inventory.FilterMovements(st.movements, filter) {
			cp := *m
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Count número total de movimientos.
func (r *MovementRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.store.read(r.tx, func(st *state) error {
		n = len(st.movements)
		return nil
	})
	return n, err
}
