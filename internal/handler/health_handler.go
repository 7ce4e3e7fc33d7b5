package handler

import (
	"context"
	"net/http"

	"activity-api/pkg/logger"
)

// StoragePinger is the liveness probe the health endpoint runs against the store.
type StoragePinger interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	db  StoragePinger
	log *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db StoragePinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log.WithError(err).Error("health check failed")
		respondJSON(w, http.StatusInternalServerError, HealthResponse{
			Status:  "unhealthy",
			Message: "Service unavailable",
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Message:  "Backend service is running",
		Database: "connected",
	})
}
