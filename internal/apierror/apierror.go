// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// Error is the canonical error envelope for all 4xx/5xx HTTP responses.
// Status carries the HTTP code the handler should write; it is never serialized.
type Error struct {
	Status int               `json:"-"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string { return e.Detail }

func New(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Detail: msg}
}

// NotFound marks a lookup that matched zero rows.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: msg}
}

// InvalidRequest marks a request that omitted all of an at-least-one parameter set.
func InvalidRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: msg}
}

// Reference marks a foreign-key target that does not exist.
func Reference(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: msg}
}

// Validation wraps per-field format violations.
func Validation(fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Detail: "Error de validacion", Fields: fields}
}

// ValidationMsg is a single-message validation failure (e.g. a unique
// constraint violation surfaced by the database).
func ValidationMsg(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Detail: msg}
}

// IsNotFound reports whether err is an apierror with 404 status.
func IsNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Status == http.StatusNotFound
}
