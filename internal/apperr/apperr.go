// Package apperr classifies failures into the HTTP statuses the API speaks.
package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind buckets an error for status-code mapping.
type Kind int

const (
	Validation Kind = iota + 1 // 400
	Auth                       // 401
	NotFound                   // 404
	Conflict                   // 409
	Internal                   // 500
)

// Error carries a caller-safe message and the wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind with a caller-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause; the message is still what callers see.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Postgres error codes surfaced as conflicts.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// FromStore maps a database error to the taxonomy. Unique-constraint and
// foreign-key violations become conflicts with the given messages; anything
// else is internal.
func FromStore(err error, uniqueMsg, fkMsg string) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Wrap(Conflict, uniqueMsg, err)
		case pgFKViolation:
			return Wrap(Conflict, fkMsg, err)
		}
	}
	return Wrap(Internal, "An internal server error occurred.", err)
}

// Status returns the HTTP status for err. Unknown errors map to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to return to the caller. Internal
// and unclassified errors collapse to a generic message; the detail stays in
// the server log.
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == Internal {
		return "An internal server error occurred."
	}
	return e.Message
}
