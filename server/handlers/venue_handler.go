package handlers

import (
	"net/http"
	"strings"

	"crawl-server/models"
	"crawl-server/models/geo"
	services "crawl-server/service"
	"crawl-server/util"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	RADIUS_QUERY_ARG  = "radius"
	KEYWORD_QUERY_ARG = "keyword"
	IDS_QUERY_ARG     = "ids"
	IDS_SEPARATOR     = ","
)

type VenueHandler struct {
	searchService  *services.VenueSearchService
	detailsService *services.VenueDetailsService
}

func NewVenueHandler(searchService *services.VenueSearchService, detailsService *services.VenueDetailsService) *VenueHandler {
	return &VenueHandler{searchService: searchService, detailsService: detailsService}
}

// SearchVenues expects ?lat={float}&lng={float}[&radius={meters}][&keyword={text}]
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := util.ParseFiniteFloat(vals.Get(LAT_QUERY_ARG))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lng, err := util.ParseFiniteFloat(vals.Get(LNG_QUERY_ARG))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid argument "+LNG_QUERY_ARG)
		return
	}

	query := models.SearchQuery{
		Coordinate:   geo.Coordinate{Latitude: lat, Longitude: lng},
		RadiusMeters: util.ParsePositiveFloat(vals.Get(RADIUS_QUERY_ARG), models.DEFAULT_SEARCH_RADIUS_METERS),
		Keyword:      strings.TrimSpace(vals.Get(KEYWORD_QUERY_ARG)),
	}

	resp, err := h.searchService.Search(r.Context(), query)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetVenueDetails expects ?ids={id}[,{id}...]
func (h *VenueHandler) GetVenueDetails(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(IDS_QUERY_ARG)

	resp, err := h.detailsService.FetchDetails(r.Context(), strings.Split(raw, IDS_SEPARATOR))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}
