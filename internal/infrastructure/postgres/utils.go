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

// isInsufficientStock verifica si el error proviene del RAISE EXCEPTION del
// procedimiento update_stock cuando la salida dejaría el stock en negativo.
func isInsufficientStock(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "P0001" && strings.Contains(strings.ToLower(pgErr.Message), "stock insuficiente")
	}
	return false
}

// nullIfEmpty convierte cadena vacía en NULL para columnas opcionales (ej. category_id).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
