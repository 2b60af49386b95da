package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/pkg/token"
	"edu-program/pkg/utils"
)

// RequireRole is the authorization gate every protected route composes with.
// It extracts the bearer token, verifies it, and compares the claim's role
// against minimum under learner < instructor < admin. RequireRole(learner)
// therefore means "any authenticated user". Verified claims are stored in
// the request context for the handler.
func RequireRole(tokens *token.Service, minimum entity.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if claims.Role.Rank() < minimum.Rank() {
				logger.Warn("Insufficient role",
					zap.String("user_id", claims.UserID),
					zap.String("role", string(claims.Role)),
					zap.String("required", string(minimum)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
