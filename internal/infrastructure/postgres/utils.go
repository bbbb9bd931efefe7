package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isCheckViolation verifica si un error es una violación de CHECK constraint (23514).
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

// isForeignKeyViolation verifica si un error es una violación de foreign key (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}
