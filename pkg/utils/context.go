package utils

import (
	"context"

	"edu-program/pkg/token"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaimsContext stores the verified token claims for downstream handlers.
func SetClaimsContext(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext returns the claims set by the authorization gate.
func GetClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
