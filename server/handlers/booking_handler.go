package handlers

import (
	"net/http"

	services "crawl-server/service"
)

const (
	NAME_QUERY_ARG     = "name"
	LOCATION_QUERY_ARG = "location"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetBookingLinks expects ?name={venue}[&location={text}]
func (h *BookingHandler) GetBookingLinks(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	links, err := h.bookingService.BookingLinks(vals.Get(NAME_QUERY_ARG), vals.Get(LOCATION_QUERY_ARG))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, links)
}
