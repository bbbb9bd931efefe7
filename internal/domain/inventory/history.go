package inventory

import (
	"iter"
	"slices"
	"sort"
	"time"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// MovementFilter opciones de consulta del historial. Todas se combinan con AND.
// El valor cero de cada campo significa "sin restricción".
type MovementFilter struct {
	ProductID   int64               // 0 = todos los productos
	Type        entity.MovementType // "" o MovementTypeAll = todos los tipos
	DateFrom    *time.Time          // límite inferior inclusivo sobre Date
	DateTo      *time.Time          // límite superior inclusivo sobre Date
	ProductName string              // coincidencia exacta con el nombre desnormalizado
	Limit       int                 // 0 = sin límite; se aplica después de filtrar
}

// Match indica si m cumple todos los predicados del filtro (ignora Limit).
func (f MovementFilter) Match(m *entity.Movement) bool {
	if f.ProductID != 0 && m.ProductID != f.ProductID {
		return false
	}
	if f.Type != "" && f.Type != entity.MovementTypeAll && m.Type != f.Type {
		return false
	}
	day := entity.DateOf(m.Date)
	if f.DateFrom != nil && day.Before(entity.DateOf(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && day.After(entity.DateOf(*f.DateTo)) {
		return false
	}
	if f.ProductName != "" && m.ProductName != f.ProductName {
		return false
	}
	return true
}

// FilterMovements devuelve una secuencia perezosa y reiniciable de los movimientos que
// cumplen f, en orden canónico (fecha desc, id desc). No modifica movements.
func FilterMovements(movements []*entity.Movement, f MovementFilter) iter.Seq[*entity.Movement] {
	ordered := slices.Clone(movements)
	SortMovements(ordered)
	return func(yield func(*entity.Movement) bool) {
		emitted := 0
		for _, m := range ordered {
			if f.Limit > 0 && emitted >= f.Limit {
				return
			}
			if !f.Match(m) {
				continue
			}
			emitted++
			if !yield(m) {
				return
			}
		}
	}
}

// SortMovements ordena en el lugar: fecha desc, a igual fecha id desc.
func SortMovements(movements []*entity.Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		a, b := movements[i], movements[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
}
