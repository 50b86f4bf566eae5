package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"crawl-server/logger"
	services "crawl-server/service"
)

const ADDRESS_QUERY_ARG = "address"

type GeocodeHandler struct {
	geocodeService *services.GeocodeService
}

func NewGeocodeHandler(geocodeService *services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeService: geocodeService}
}

// Geocode expects ?address={text} and relays the upstream body unchanged.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	result, err := h.geocodeService.Geocode(r.Context(), r.URL.Query().Get(ADDRESS_QUERY_ARG))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result); err != nil {
		logger.Warn("failed to write geocode result", zap.Error(err))
	}
}
