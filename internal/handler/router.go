package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"activity-api/internal/config"
	"activity-api/internal/middleware"
	"activity-api/pkg/logger"
)

// Handlers bundles every endpoint handler for router assembly.
type Handlers struct {
	Health       *HealthHandler
	Activity     *ActivityHandler
	Registration *RegistrationHandler
	Seed         *SeedHandler
}

// NewRouter assembles the HTTP router: middleware chain, one route per
// operation, and the uniform not-found envelope.
func NewRouter(cfg *config.Config, log *logger.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID())
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/health", h.Health.Check)
	r.Get("/activities", h.Activity.List)
	r.Get("/activities/{activityID}", h.Activity.Get)
	r.Post("/activities/{activityID}/register", h.Registration.Register)
	r.Get("/registrations", h.Registration.List)

	r.With(middleware.AdminAuth(cfg.AdminJWTSecret, log)).Post("/init-data", h.Seed.InitData)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, Envelope{Success: false, Message: "Resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, Envelope{Success: false, Message: "Method not allowed"})
	})

	return r
}
