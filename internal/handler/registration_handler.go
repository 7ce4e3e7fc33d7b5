package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-api/internal/domain"
	"activity-api/internal/service"
	apperrors "activity-api/pkg/errors"
	"activity-api/pkg/logger"
)

// RegistrationHandler handles the registration endpoints
type RegistrationHandler struct {
	registrationService *service.RegistrationService
	log                 *logger.Logger
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService *service.RegistrationService, log *logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService, log: log}
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registration_id"`
}

// Register handles POST /activities/{activityID}/register
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewValidationError("Invalid request body"), h.log)
		return
	}

	registrationID, err := h.registrationService.Register(r.Context(), activityID, &req)
	if err != nil {
		respondError(w, err, h.log)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Success:        true,
		Message:        "Registration successful",
		RegistrationID: registrationID,
	})
}

// List handles GET /registrations?email=
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	details, err := h.registrationService.ListRegistrations(r.Context(), email)
	if err != nil {
		respondError(w, err, h.log)
		return
	}

	respondData(w, http.StatusOK, details)
}
