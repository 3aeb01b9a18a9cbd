package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/anylist-api/internal/domain"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Detail:         "Key (email)=(ana@example.com) already exists.",
		ConstraintName: "users_email_key",
	}

	err := translateError(pgErr, "insert user")

	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, "(email)=(ana@example.com) already exists.", err.Error())
	assert.True(t, isUniqueViolation(pgErr))
}

func TestTranslateError_SinDetalleUsaConstraint(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "insert user")
	assert.Equal(t, "duplicate value violates users_email_key", err.Error())
}

func TestTranslateError_OtroErrorQuedaSinClasificar(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503", Detail: "Key (user_id)=(x) is not present in table \"users\"."}

	err := translateError(cause, "insert item")

	assert.False(t, domain.IsClassified(err), "el use case decide: log + Internal")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert item")
	assert.False(t, isUniqueViolation(errors.New("23505 en texto no cuenta")))
}

func TestTranslateError_Nil(t *testing.T) {
	assert.NoError(t, translateError(nil, "x"))
}
