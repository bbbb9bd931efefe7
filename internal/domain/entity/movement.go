package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de stock. Conjunto cerrado.
type MovementType string

// Tipos de movimiento (valores del contrato HTTP).
const (
	MovementTypeReceipt MovementType = "Entrée" // entrada (+)
	MovementTypeIssue   MovementType = "Sortie" // salida (-)

	// MovementTypeAll solo es válido como filtro: "todos los tipos".
	MovementTypeAll MovementType = "Tous"
)

// Valid indica si t es un tipo de movimiento registrable.
func (t MovementType) Valid() bool {
	return t == MovementTypeReceipt || t == MovementTypeIssue
}

// ParseMovementType convierte el valor recibido en un MovementType registrable.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(s)
	if !t.Valid() {
		return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
	}
	return t, nil
}

// Movement representa un movimiento inmutable de stock sobre un producto.
// Las correcciones se hacen con un movimiento nuevo, nunca editando uno existente.
type Movement struct {
	ID          int64 // asignado de forma monótona por el repositorio
	ProductID   int64
	ProductName string // desnormalizado para listados e historial
	Type        MovementType
	Quantity    decimal.Decimal // siempre > 0; el signo lo da Type
	Date        time.Time       // fecha civil (00:00 UTC)
	Comment     *string
	CreatedAt   time.Time
}

// Delta devuelve la cantidad con signo que el movimiento aplica al stock.
func (m *Movement) Delta() decimal.Decimal {
	if m.Type == MovementTypeIssue {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
