// Package apperr defines the error taxonomy shared by repositories,
// middleware, and controllers. Handlers convert these sentinels into HTTP
// status codes at the boundary via Status; nothing propagates past a handler.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated means the request carried no credential at all.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken means a credential was presented but failed
	// signature or expiry verification.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden means the authenticated identity lacks the required
	// role or does not own the target resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means no document matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID means the supplied id is not a valid document id.
	ErrInvalidID = errors.New("invalid id")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
)

// Status maps an error to the HTTP status code reported to clients.
// Unknown errors are treated as internal failures.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
