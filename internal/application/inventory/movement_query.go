package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

// MovementQueryUseCase consultas de historial (solo lectura).
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// List devuelve los movimientos que cumplen la consulta, del más reciente al más antiguo.
func (uc *MovementQueryUseCase) List(ctx context.Context, q dto.MovementQuery) ([]dto.MovementResponse, error) {
	list, err := uc.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewMovementList(list), nil
}

// Find como List pero devuelve entidades (exports).
func (uc *MovementQueryUseCase) Find(ctx context.Context, q dto.MovementQuery) ([]*entity.Movement, error) {
	filter, err := ParseMovementQuery(q)
	if err != nil {
		return nil, err
	}
	return uc.movRepo.List(ctx, filter)
}

// ParseMovementQuery convierte los parámetros HTTP en un MovementFilter.
func ParseMovementQuery(q dto.MovementQuery) (domaininv.MovementFilter, error) {
	var f domaininv.MovementFilter
	if q.ProductID < 0 {
		return f, domain.Invalid("product_id inválido")
	}
	f.ProductID = q.ProductID
	switch t := entity.MovementType(strings.TrimSpace(q.Type)); {
	case t == "" || t == entity.MovementTypeAll:
	case t.Valid():
		f.Type = t
	default:
		return f, domain.Invalid("type debe ser Entrée, Sortie o Tous")
	}
	if s := strings.TrimSpace(q.DateFrom); s != "" {
		d, err := entity.ParseDate(s)
		if err != nil {
			return f, domain.Invalid("date_from inválida, formato esperado YYYY-MM-DD")
		}
		f.DateFrom = &d
	}
	if s := strings.TrimSpace(q.DateTo); s != "" {
		d, err := entity.ParseDate(s)
		if err != nil {
			return f, domain.Invalid("date_to inválida, formato esperado YYYY-MM-DD")
		}
		f.DateTo = &d
	}
	if q.Limit < 0 {
		return f, domain.Invalid("limit no puede ser negativo")
	}
	f.Limit = q.Limit
	f.ProductName = q.ProductName
	return f, nil
}
