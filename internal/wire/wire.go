package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"edu-program/internal/adaptor"
	"edu-program/internal/data/repository"
	"edu-program/internal/usecase"
	"edu-program/pkg/middleware"
	"edu-program/pkg/token"
	"edu-program/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, tokens *token.Service, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// JSON bodies for unmatched routes and verbs. Set before the Route calls
	// below so sub-routers inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireProfile(r, handler.Profile, tokens, logger)
	wireEnrollment(r, handler.Enrollment, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
