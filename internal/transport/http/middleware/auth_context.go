package middleware

import (
	"context"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// WithClaims stores the validated claim set for downstream handlers.
func WithClaims(ctx context.Context, c domain.ClaimSet) context.Context {
	return context.WithValue(ctx, ctxClaims, c)
}

// ClaimsFromContext returns the claim set injected by the Auth middleware.
func ClaimsFromContext(ctx context.Context) (domain.ClaimSet, bool) {
	c, ok := ctx.Value(ctxClaims).(domain.ClaimSet)
	return c, ok
}
