package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"crawl-server/logger"
	"crawl-server/models"
	services "crawl-server/service"
	"crawl-server/util"
)

const (
	ORIGIN_QUERY_ARG      = "origin"
	DESTINATION_QUERY_ARG = "destination"
	WAYPOINTS_QUERY_ARG   = "waypoints"
)

type DirectionsHandler struct {
	routeService *services.RouteService
}

func NewDirectionsHandler(routeService *services.RouteService) *DirectionsHandler {
	return &DirectionsHandler{routeService: routeService}
}

// GetDirections expects ?origin={lat,lng}&destination={lat,lng}[&waypoints={lat,lng}|{lat,lng}...]
func (h *DirectionsHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.computeRoute(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetDirectionsChart takes the same arguments as GetDirections and renders
// the first route as an HTML chart.
func (h *DirectionsHandler) GetDirectionsChart(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.computeRoute(w, r)
	if !ok {
		return
	}
	if len(resp.Routes) == 0 {
		WriteError(w, http.StatusNotFound, resp.Error)
		return
	}

	var buf bytes.Buffer
	if err := util.PlotRoute(&buf, resp.Routes[0]); err != nil {
		logger.Error("failed to plot route", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", CONTENT_TYPE_HTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write route chart", zap.Error(err))
	}
}

func (h *DirectionsHandler) computeRoute(w http.ResponseWriter, r *http.Request) (*models.DirectionsResponse, bool) {
	vals := r.URL.Query()

	origin, err := util.ParseCoordinate(vals.Get(ORIGIN_QUERY_ARG))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid argument "+ORIGIN_QUERY_ARG)
		return nil, false
	}
	destination, err := util.ParseCoordinate(vals.Get(DESTINATION_QUERY_ARG))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid argument "+DESTINATION_QUERY_ARG)
		return nil, false
	}
	waypoints := util.ParseCoordinateList(vals.Get(WAYPOINTS_QUERY_ARG), util.WAYPOINT_SEPARATOR, util.MAX_WAYPOINTS)

	resp, err := h.routeService.ComputeRoute(r.Context(), origin, destination, waypoints)
	if err != nil {
		WriteServiceError(w, err)
		return nil, false
	}
	return resp, true
}
