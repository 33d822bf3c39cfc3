package graph

import (
	"errors"

	"github.com/citasya/citas-api/store"
)

// Error codes surfaced in extensions.code of every resolver error.
const (
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeUnavailable     = "UNAVAILABLE"
)

// Error is a typed API error; graphql-go picks up Extensions and includes
// them in the response.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func errValidation(msg string) *Error { return &Error{Code: CodeValidation, Message: msg} }
func errNotFound(msg string) *Error   { return &Error{Code: CodeNotFound, Message: msg} }
func errConflict(msg string) *Error   { return &Error{Code: CodeConflict, Message: msg} }
func errForbidden(msg string) *Error  { return &Error{Code: CodeForbidden, Message: msg} }

// errAuth deliberately carries one fixed message so callers can't tell a
// bad username from a bad password.
func errAuth() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "invalid credentials"}
}

func errUnauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "authentication required"}
}

// fromStore translates store sentinels into typed API errors.
func fromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return errNotFound(err.Error())
	case errors.Is(err, store.ErrConflict):
		return errConflict(err.Error())
	case errors.Is(err, store.ErrInvalid):
		return errValidation(err.Error())
	default:
		return &Error{Code: CodeUnavailable, Message: "service temporarily unavailable"}
	}
}
