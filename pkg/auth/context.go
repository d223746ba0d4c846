package auth

import "context"

// ctxKey is the unexported key used to store verified claims in context.
type ctxKey struct{}

// WithClaims stores verified claims in ctx. Called by the auth middleware
// after a successful token check.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromCtx extracts the verified claims from ctx, or nil if the request
// did not pass through the auth middleware.
func FromCtx(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ctxKey{}).(*Claims); ok {
		return claims
	}
	return nil
}

// EmailFromCtx returns the authenticated email, or "" when unauthenticated.
func EmailFromCtx(ctx context.Context) string {
	if claims := FromCtx(ctx); claims != nil {
		return claims.Email
	}
	return ""
}
