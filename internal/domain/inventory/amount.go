package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain"
)

// AmountScale decimales admitidos en cantidades, umbrales y precios (NUMERIC(12,2)).
const AmountScale = 2

// MaxAmount mayor valor representable: 10 dígitos enteros y 2 decimales.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidateAmount rechaza valores que no caben en NUMERIC(12,2).
// El exponente se acota antes de comparar: Cmp y Truncate reescalan el coeficiente.
func ValidateAmount(field string, v decimal.Decimal) error {
	exp := v.Exponent()
	switch {
	case exp > 10:
		return domain.Invalid("%s excede el máximo %s", field, MaxAmount.String())
	case exp < -10:
		return domain.Invalid("%s admite como máximo %d decimales", field, AmountScale)
	}
	if v.Abs().GreaterThan(MaxAmount) {
		return domain.Invalid("%s excede el máximo %s", field, MaxAmount.String())
	}
	if !v.Equal(v.Truncate(AmountScale)) {
		return domain.Invalid("%s admite como máximo %d decimales", field, AmountScale)
	}
	return nil
}
