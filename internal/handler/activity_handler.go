package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-api/internal/service"
	"activity-api/pkg/logger"
)

// ActivityHandler handles activity read endpoints
type ActivityHandler struct {
	activityService *service.ActivityService
	log             *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, log: log}
}

// List handles GET /activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		respondError(w, err, h.log)
		return
	}

	respondData(w, http.StatusOK, details)
}

// Get handles GET /activities/{activityID}
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")

	detail, err := h.activityService.GetActivity(r.Context(), activityID)
	if err != nil {
		respondError(w, err, h.log)
		return
	}

	respondData(w, http.StatusOK, detail)
}
