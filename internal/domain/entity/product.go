package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de stock.
// Quantity solo cambia vía movimientos (motor de inventario); nunca es negativa.
type Product struct {
	ID           int64
	Name         string
	Category     Category
	Quantity     decimal.Decimal // cantidad disponible, en la unidad del producto
	Unit         string          // kg, L, boîtes, ...
	MinThreshold decimal.Decimal // umbral de reposición; 0 = sin alerta
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockValue devuelve quantity * price_per_unit sin redondear.
func (p *Product) StockValue() decimal.Decimal {
	return p.Quantity.Mul(p.PricePerUnit)
}
