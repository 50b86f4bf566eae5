package handlers

import (
	"net/http"

	"crawl-server/models"
)

const HEALTH_STATUS_OK = "ok"

type HealthHandler struct {
	upstreamConfigured bool
}

func NewHealthHandler(upstreamConfigured bool) *HealthHandler {
	return &HealthHandler{upstreamConfigured: upstreamConfigured}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:             HEALTH_STATUS_OK,
		UpstreamConfigured: h.upstreamConfigured,
	})
}
