package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/bitebasket/bitebasket/pkg/apperr"
	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// RoleLookup answers role queries for the admin gate. The Mongo-backed
// user repository satisfies this; tests substitute a fake.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin gates a route behind the admin role. It must run after
// RequireAuth, which puts the verified claims into the request context.
//
// The role is looked up fresh from the user store on every request rather
// than read from the token, so a role change takes effect as soon as the
// store is updated.
func RequireAdmin(roles RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := auth.EmailFromCtx(r.Context())
			if email == "" {
				response.FromError(w, apperr.ErrUnauthenticated)
				return
			}

			role, err := roles.RoleByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					response.FromError(w, apperr.ErrForbidden)
					return
				}
				response.FromError(w, err)
				return
			}

			if !auth.IsAdminRole(role) {
				response.FromError(w, apperr.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
