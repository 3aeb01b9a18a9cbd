package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/anylist-api/internal/domain"
)

const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return false
}

// translateError convierte una violación de unicidad en un error Validation legible y
// envuelve cualquier otro error con la operación para el log.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return domain.Validation(cleanDetail(pgErr))
	}
	return fmt.Errorf("%s: %w", op, err)
}

// cleanDetail quita el prefijo "Key " del detalle de PostgreSQL:
// `Key (email)=(a@b.com) already exists.` -> `(email)=(a@b.com) already exists.`
func cleanDetail(pgErr *pgconn.PgError) string {
	detail := strings.TrimSpace(pgErr.Detail)
	if detail == "" {
		if pgErr.ConstraintName != "" {
			return fmt.Sprintf("duplicate value violates %s", pgErr.ConstraintName)
		}
		return "duplicate value"
	}
	if len(detail) >= 4 && strings.EqualFold(detail[:4], "key ") {
		detail = detail[4:]
	}
	return detail
}
