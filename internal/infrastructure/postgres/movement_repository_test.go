package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

const selectMovements = `SELECT id, product_id, product_name, type, quantity, date, comment, created_at FROM movements`

func TestBuildMovementQuery_NoFilter(t *testing.T) {
	q, args := buildMovementQuery(inventory.MovementFilter{})
	assert.Equal(t, selectMovements+" ORDER BY date DESC, id DESC", q)
	assert.Empty(t, args)
}

func TestBuildMovementQuery_AllTypesIsNoConstraint(t *testing.T) {
	q, args := buildMovementQuery(inventory.MovementFilter{Type: entity.MovementTypeAll})
	assert.NotContains(t, q, "WHERE")
	assert.Empty(t, args)
}

func TestBuildMovementQuery_Conjunction(t *testing.T) {
	from := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	q, args := buildMovementQuery(inventory.MovementFilter{
		ProductID:   7,
		Type:        entity.MovementTypeIssue,
		DateFrom:    &from,
		DateTo:      &to,
		ProductName: "Lait",
		Limit:       10,
	})
	assert.Equal(t, selectMovements+
		" WHERE product_id = $1 AND type = $2 AND date >= $3 AND date <= $4 AND product_name = $5"+
		" ORDER BY date DESC, id DESC LIMIT $6", q)
	assert.Equal(t, []any{
		int64(7), "Sortie",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to,
		"Lait", 10,
	}, args)
}
