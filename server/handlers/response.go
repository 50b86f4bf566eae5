package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"crawl-server/logger"
	"crawl-server/models"
	services "crawl-server/service"
)

const CONTENT_TYPE_JSON = "application/json"
const CONTENT_TYPE_HTML = "text/html; charset=utf-8"

// WriteJSON encodes body as the JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError writes the {"error": message} body used by every non-2xx answer.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: message})
}

// WriteServiceError maps a service error to its HTTP status.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsClientInputError(err):
		WriteError(w, http.StatusBadRequest, err.Error())
	case services.IsUpstreamUnavailable(err):
		logger.Warn("upstream unavailable", zap.Error(err))
		WriteError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, services.ErrNotConfigured):
		WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("unhandled service error", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
