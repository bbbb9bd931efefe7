package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento; id (BIGSERIAL) y created_at los asigna la DB.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, product_name, type, quantity, date, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.ProductName, string(movement.Type),
		movement.Quantity, entity.DateOf(movement.Date), movement.Comment,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.Invalid("movimiento rechazado por la base de datos: %v", err)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List aplica el filtro en SQL, en orden canónico (date desc, id desc).
func (r *MovementRepo) List(ctx context.Context, filter inventory.MovementFilter) ([]*entity.Movement, error) {
	query, args := buildMovementQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Movement, 0)
	for rows.Next() {
		var m entity.Movement
		var typ string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.ProductName, &typ, &m.Quantity, &m.Date, &m.Comment, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		m.Date = entity.DateOf(m.Date)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count número total de movimientos.
func (r *MovementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// buildMovementQuery traduce MovementFilter a SQL parametrizado. Todas las condiciones con AND.
func buildMovementQuery(f inventory.MovementFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ProductID != 0 {
		add("product_id = $%d", f.ProductID)
	}
	if f.Type != "" && f.Type != entity.MovementTypeAll {
		add("type = $%d", string(f.Type))
	}
	if f.DateFrom != nil {
		add("date >= $%d", entity.DateOf(*f.DateFrom))
	}
	if f.DateTo != nil {
		add("date <= $%d", entity.DateOf(*f.DateTo))
	}
	if f.ProductName != "" {
		add("product_name = $%d", f.ProductName)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, product_id, product_name, type, quantity, date, comment, created_at FROM movements`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY date DESC, id DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args
}
