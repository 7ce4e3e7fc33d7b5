package handler

import (
	"fmt"
	"net/http"

	"activity-api/internal/service"
	"activity-api/pkg/logger"
)

// SeedHandler handles the destructive demo-data reset
type SeedHandler struct {
	seedService *service.SeedService
	log         *logger.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService, log *logger.Logger) *SeedHandler {
	return &SeedHandler{seedService: seedService, log: log}
}

// InitDataResponse is the body of a successful demo-data reset.
type InitDataResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	ActivityIDs []string `json:"activity_ids"`
}

// InitData handles POST /init-data
func (h *SeedHandler) InitData(w http.ResponseWriter, r *http.Request) {
	ids, err := h.seedService.InitData(r.Context())
	if err != nil {
		respondError(w, err, h.log)
		return
	}

	respondJSON(w, http.StatusCreated, InitDataResponse{
		Success:     true,
		Message:     fmt.Sprintf("Successfully initialized %d activities", len(ids)),
		ActivityIDs: ids,
	})
}
