package graphql

import (
	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/internal/domain"
)

// Códigos de extensión GraphQL.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const msgInvalidUUID = "Validation failed (uuid is expected)"

// gqlError el ejecutor copia Extensions() a la respuesta solo si el resolver devuelve este tipo directamente.
type gqlError struct {
	code    string
	message string
}

func (e *gqlError) Error() string { return e.message }

func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toGQLError traduce un error de dominio al código de extensión correspondiente.
func toGQLError(err error) error {
	if err == nil {
		return nil
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return &gqlError{code: CodeNotFound, message: err.Error()}
	case domain.KindValidation:
		return &gqlError{code: CodeBadRequest, message: err.Error()}
	case domain.KindUnauthorized:
		return &gqlError{code: CodeUnauthenticated, message: err.Error()}
	case domain.KindForbidden:
		return &gqlError{code: CodeForbidden, message: err.Error()}
	default:
		return &gqlError{code: CodeInternal, message: domain.InternalMessage}
	}
}

// parseID exige un UUID en los argumentos id y lo devuelve en forma canónica (minúsculas).
func parseID(id graphqlgo.ID) (string, error) {
	s := string(id)
	u, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		return "", &gqlError{code: CodeBadRequest, message: msgInvalidUUID}
	}
	return u.String(), nil
}
