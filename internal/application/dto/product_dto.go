package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest cuerpo de POST /api/products y PUT /api/products/:id (registro completo).
// Los decimales se aceptan como número o como string; ausentes o null quedan con Valid=false.
type ProductRequest struct {
	Name         string              `json:"name" validate:"required,max=255"`
	Category     string              `json:"category" validate:"required,max=100"`
	Quantity     decimal.NullDecimal `json:"quantity"`
	Unit         string              `json:"unit" validate:"required,max=50"`
	MinThreshold decimal.NullDecimal `json:"min_threshold"`
	PricePerUnit decimal.NullDecimal `json:"price_per_unit"`
}

// ProductResponse salida de un producto. Status y CriticalityPct son derivados.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
	Status         string          `json:"status"`
	CriticalityPct int             `json:"criticality_pct"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AlertSummaryResponse respuesta de GET /api/products/alerts/summary.
type AlertSummaryResponse struct {
	Stockout int `json:"stockout"`
	Critical int `json:"critical"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}
