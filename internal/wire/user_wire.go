package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"edu-program/internal/adaptor"
	"edu-program/internal/data/entity"
	"edu-program/pkg/middleware"
	"edu-program/pkg/token"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Admin user management - admin rank required
	r.With(middleware.RequireRole(tokens, entity.RoleAdmin, log)).
		Route("/api/admin/users", func(r chi.Router) {
			r.Get("/", userHandler.Get) // list, or single via ?id=
			r.Post("/", userHandler.Create)
			r.Put("/", userHandler.Update)
			r.Patch("/", userHandler.ResetPassword)
			r.Delete("/", userHandler.Delete)
		})
}
