package middleware

import (
	"net/http"
	"strings"

	"github.com/bitebasket/bitebasket/pkg/apperr"
	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// RequireAuth gates a route behind a valid bearer token.
//
// A missing Authorization header is reported as 401; a header that is
// present but fails verification is reported as 403. On success the
// decoded claims are attached to the request context for downstream
// handlers via auth.FromCtx / auth.EmailFromCtx.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.FromError(w, apperr.ErrUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || token == header {
			// No Bearer prefix at all counts as no credential.
			response.FromError(w, apperr.ErrUnauthenticated)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.FromError(w, apperr.ErrInvalidToken)
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
