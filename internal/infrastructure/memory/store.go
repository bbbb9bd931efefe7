// Package memory implementa los puertos de persistencia en memoria de proceso.
// Es el almacén por defecto (STORE_DRIVER=memory) y el que usan los tests de casos de uso y HTTP.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store objeto de almacenamiento explícito: catálogo, libro de movimientos y contadores de ID.
// Las lecturas toman RLock; cada escritura suelta y cada transacción toman el lock exclusivo.
type Store struct {
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

type state struct {
	products       map[int64]*entity.Product
	movements      []*entity.Movement
	nextProductID  int64
	nextMovementID int64
}

// Option configura el Store.
type Option func(*Store)

// WithClock fija el reloj usado para CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un almacén vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: &state{
			products:       make(map[int64]*entity.Product),
			nextProductID:  1,
			nextMovementID: 1,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository {
	return &ProductRepo{store: s}
}

// Movements devuelve el repositorio de movimientos fuera de transacción.
func (s *Store) Movements() repository.MovementRepository {
	return &MovementRepo{store: s}
}

// Run ejecuta fn con el lock exclusivo sobre una copia del estado. Si fn devuelve nil la copia
// reemplaza al estado vigente; si no, se descarta y nada de lo hecho en fn es visible.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(&ProductRepo{store: s, tx: work}, &MovementRepo{store: s, tx: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

// read ejecuta fn sobre el estado de la tx o, fuera de ella, bajo RLock.
func (s *Store) read(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

func (s *Store) write(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// clone copia el estado. Los movimientos son inmutables y se comparten; los productos se copian.
func (st *state) clone() *state {
	out := &state{
		products:       make(map[int64]*entity.Product, len(st.products)),
		movements:      make([]*entity.Movement, len(st.movements)),
		nextProductID:  st.nextProductID,
		nextMovementID: st.nextMovementID,
	}
	for id, p := range st.products {
		cp := *p
		out.products[id] = &cp
	}
	copy(out.movements, st.movements)
	return out
}
