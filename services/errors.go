// errors.go - Typed service errors carrying an error kind and HTTP status hint
// Services never return raw storage errors to handlers for expected failure
// cases; every business failure is one of the kinds below. Anything else is
// treated as an internal error by the boundary layer.

package services

import "net/http"

type ErrorKind int

const (
	KindValidation   ErrorKind = iota + 1 // Field-level input failure (422)
	KindUnauthorized                      // Credential or token failure (401)
	KindNotFound                          // Missing entity or ownership mismatch (404)
	KindBusinessRule                      // Business rule violation, e.g. insufficient stock (400)
)

// Status - Maps an error kind to its HTTP status code
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Error - A tagged service failure with an optional field error map
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string // Field name -> message, set for validation failures
}

func (e *Error) Error() string { return e.Message }

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func BusinessRule(message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func ValidationFailed(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}
