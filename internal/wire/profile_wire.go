package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"edu-program/internal/adaptor"
	"edu-program/internal/data/entity"
	"edu-program/pkg/middleware"
	"edu-program/pkg/token"
)

// wireProfile configures the self-service routes. Learner rank means any
// authenticated user may pass.
func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.With(middleware.RequireRole(tokens, entity.RoleLearner, log)).
		Route("/api/profile", func(r chi.Router) {
			r.Get("/", profileHandler.Get)
			r.Put("/", profileHandler.Update)
			r.Patch("/", profileHandler.ChangePassword)
			r.Delete("/", profileHandler.Delete)
		})
}
