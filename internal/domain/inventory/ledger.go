// Package inventory contiene las reglas de negocio puras del libro de stock:
// motor de movimientos, clasificación de estado, agregados del dashboard y filtro de historial.
// No realiza I/O; opera sobre productos y movimientos ya cargados.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// ApplyMovement calcula la nueva cantidad de p tras un movimiento de tipo t por qty.
//
//	Entrée: nueva = actual + qty
//	Sortie: nueva = actual - qty, error ErrInsufficientStock si qty > actual
//
// qty y el resultado deben caber en NUMERIC(12,2) (ValidateAmount).
//
// No modifica p. La persistencia atómica (actualizar producto + registrar movimiento)
// es responsabilidad del caso de uso dentro de una transacción.
func ApplyMovement(p *entity.Product, t entity.MovementType, qty decimal.Decimal) (decimal.Decimal, error) {
	if p == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	if !qty.IsPositive() {
		return decimal.Zero, domain.Invalid("quantity debe ser mayor que 0")
	}
	if err := ValidateAmount("quantity", qty); err != nil {
		return decimal.Zero, err
	}
	switch t {
	case entity.MovementTypeReceipt:
		next := p.Quantity.Add(qty)
		if next.GreaterThan(MaxAmount) {
			return decimal.Zero, domain.Invalid("la cantidad resultante excede el máximo %s", MaxAmount.String())
		}
		return next, nil
	case entity.MovementTypeIssue:
		if qty.GreaterThan(p.Quantity) {
			return decimal.Zero, domain.ErrInsufficientStock
		}
		return p.Quantity.Sub(qty), nil
	default:
		return decimal.Zero, domain.Invalid("tipo de movimiento desconocido: %q", string(t))
	}
}

// ReconciliationFor devuelve el movimiento (tipo y cantidad) que lleva el stock de
// current a target. ok es false si no hay diferencia.
func ReconciliationFor(current, target decimal.Decimal) (t entity.MovementType, qty decimal.Decimal, ok bool) {
	delta := target.Sub(current)
	switch delta.Sign() {
	case 1:
		return entity.MovementTypeReceipt, delta, true
	case -1:
		return entity.MovementTypeIssue, delta.Neg(), true
	}
	return "", decimal.Zero, false
}
