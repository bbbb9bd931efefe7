package dto

import (
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

// NewProductResponse convierte la entidad en su representación HTTP, con estado derivado.
func NewProductResponse(p *entity.Product) ProductResponse {
	c := inventory.ClassifyProduct(p)
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Quantity:       p.Quantity,
		Unit:           p.Unit,
		MinThreshold:   p.MinThreshold,
		PricePerUnit:   p.PricePerUnit,
		Status:         c.Status.String(),
		CriticalityPct: c.CriticalityPct,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewProductList convierte una lista; nunca devuelve nil (JSON "[]").
func NewProductList(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// NewMovementResponse convierte un movimiento en su representación HTTP.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Date:        entity.FormatDate(m.Date),
		Comment:     m.Comment,
		CreatedAt:   m.CreatedAt,
	}
}

// NewMovementList convierte una lista; nunca devuelve nil.
func NewMovementList(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, NewMovementResponse(m))
	}
	return out
}
