package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que los casos de uso devuelven a la capa de transporte.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindUnauthorized
	KindForbidden
)

// String devuelve el nombre del tipo de error.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// InternalMessage es lo único que ve el cliente ante un error Internal.
const InternalMessage = "Please check the server logs"

// Error error de dominio con su clasificación. Err conserva la causa original (nunca se expone).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind, así errors.Is(err, ErrNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Errores de dominio sin mensaje específico.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrInternal     = &Error{Kind: KindInternal}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden    = &Error{Kind: KindForbidden, Message: "Forbidden resource"}
)

// NotFound construye un error NotFound con el mensaje formateado.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation construye un error de validación.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Unauthorized construye un error de autenticación con mensaje propio.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden construye un error de autorización con mensaje propio.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Internal envuelve una causa no clasificada con el mensaje genérico.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: cause}
}

// KindOf devuelve la clasificación de err; cualquier error sin clasificar es Internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsClassified indica si err ya trae una clasificación de dominio.
func IsClassified(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
