package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest cuerpo de POST /api/movements.
type CreateMovementRequest struct {
	ProductID int64               `json:"product_id" validate:"required,gt=0"`
	Type      string              `json:"type" validate:"required"`
	Quantity  decimal.NullDecimal `json:"quantity"`
	Date      string              `json:"date" validate:"required"` // YYYY-MM-DD
	Comment   *string             `json:"comment"`
}

// MovementQuery parámetros de GET /api/movements. Vacío = sin restricción.
type MovementQuery struct {
	ProductID   int64  `query:"product_id"`
	Type        string `query:"type"` // Entrée | Sortie | Tous
	DateFrom    string `query:"date_from"`
	DateTo      string `query:"date_to"`
	ProductName string `query:"product_name"`
	Limit       int    `query:"limit"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        string          `json:"date"`
	Comment     *string         `json:"comment"`
	CreatedAt   time.Time       `json:"created_at"`
}
