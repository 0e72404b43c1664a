// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Domain error kinds. Services wrap them with a user-facing message:
//
//	fmt.Errorf("%w: boleta no encontrada", apierror.ErrNotFound)
var (
	ErrNotFound    = errors.New("no encontrado")
	ErrConflict    = errors.New("conflicto")
	ErrValidation  = errors.New("dato invalido")
	ErrForbidden   = errors.New("permisos insuficientes")
	ErrUnavailable = errors.New("servicio no disponible")
)

// Error pairs a kind with the message shown to the user.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

func Unavailable(format string, args ...any) error {
	return &Error{Kind: ErrUnavailable, Msg: fmt.Sprintf(format, args...)}
}

// Status maps an error returned by a service to its HTTP status and the
// message that is safe to show. Unknown errors become a generic 500.
func Status(err error) (int, *APIError) {
	var de *Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, New("Error interno del servidor")
	}
	switch {
	case errors.Is(de.Kind, ErrNotFound):
		return http.StatusNotFound, New(de.Msg)
	case errors.Is(de.Kind, ErrConflict):
		return http.StatusConflict, New(de.Msg)
	case errors.Is(de.Kind, ErrValidation):
		return http.StatusUnprocessableEntity, New(de.Msg)
	case errors.Is(de.Kind, ErrForbidden):
		return http.StatusForbidden, New(de.Msg)
	case errors.Is(de.Kind, ErrUnavailable):
		return http.StatusServiceUnavailable, New(de.Msg)
	default:
		return http.StatusBadRequest, New(de.Msg)
	}
}
