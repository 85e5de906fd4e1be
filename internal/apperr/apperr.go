package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for translation to an HTTP status code.
type Kind int

const (
	Validation Kind = iota
	BadToken
	Auth
	NotFound
	Conflict
	Upstream
	Persistence
)

// Error is the failure value every service returns. Issue and Details map
// directly onto the {issue, details} response envelope.
type Error struct {
	Kind    Kind
	Issue   string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Issue, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Issue, e.Details)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, issue, details string) *Error {
	return &Error{Kind: kind, Issue: issue, Details: details}
}

func Wrap(kind Kind, issue, details string, err error) *Error {
	return &Error{Kind: kind, Issue: issue, Details: details, Err: err}
}

func BadRequest(details string) *Error {
	return New(Validation, "Bad Request!", details)
}

func Unauthorized(details string) *Error {
	return New(Auth, "Authentication failed!", details)
}

func NotFoundErr(details string) *Error {
	return New(NotFound, "Not Found!", details)
}

func ConflictErr(details string) *Error {
	return New(Conflict, "Conflict!", details)
}

func UpstreamErr(details string, err error) *Error {
	return Wrap(Upstream, "Internal Server Error!", details, err)
}

func PersistenceErr(details string, err error) *Error {
	return Wrap(Persistence, "Not Implemented!", details, err)
}

// Status maps an error to the HTTP status code it should produce. Anything
// that is not an *Error is treated as an internal server error.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation, BadToken:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Persistence:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Envelope returns the issue/details pair for the wire. Non-*Error values
// collapse to a generic body so internals never leak.
func Envelope(err error) (issue, details string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Issue, e.Details
	}
	return "Internal Server Error!", "Unable to perform this operation due to some technical problem."
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
