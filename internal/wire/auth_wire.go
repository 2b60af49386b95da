package wire

import (
	"github.com/go-chi/chi/v5"

	"edu-program/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
}
