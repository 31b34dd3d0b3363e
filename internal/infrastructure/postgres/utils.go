package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// dateText selecciona una columna DATE como YYYY-MM-DD; vacío si es NULL.
func dateText(col string) string {
	return "COALESCE(to_char(" + col + ", 'YYYY-MM-DD'), '')"
}

// nullIfEmpty las fechas vacías se guardan como NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
