package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "activity-api/pkg/errors"
	"activity-api/pkg/logger"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON writes any payload with a status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondData writes a success envelope carrying data
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, Envelope{Success: true, Data: data})
}

// respondError maps an error to its envelope at the handler boundary. The
// user-visible message comes from the error taxonomy; technical detail is
// confined to the error field and never replaces the message.
func respondError(w http.ResponseWriter, err error, log *logger.Logger) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.WithError(err).Error("unclassified handler error")
		appErr = apperrors.NewStorageError("Internal server error", err)
	}

	envelope := Envelope{Success: false, Message: appErr.Message}
	if appErr.Internal != nil {
		envelope.Error = appErr.Internal.Error()
	}
	respondJSON(w, appErr.StatusCode, envelope)
}
