package handlers

import (
	"encoding/json"
	"net/http"

	"portfolioapi/internal/apperr"
)

// ErrorResponse is the failure envelope of the API.
type ErrorResponse struct {
	Issue   string `json:"issue"`
	Details string `json:"details"`
}

// MessageResponse is the success envelope for writes.
type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAppError translates a service error into the {issue, details}
// envelope with the status its kind maps to.
func (h *Handlers) writeAppError(w http.ResponseWriter, err error) {
	issue, details := apperr.Envelope(err)
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", "issue", issue, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Issue: issue, Details: details})
}

func writeBadRequest(w http.ResponseWriter, details string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Issue: "Bad Request!", Details: details})
}
