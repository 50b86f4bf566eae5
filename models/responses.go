package models

import "crawl-server/models/venue"

// Search status discriminators.
const (
	STATUS_OK           = "OK"
	STATUS_ZERO_RESULTS = "ZERO_RESULTS"
	STATUS_ERROR        = "ERROR"
)

// SearchVenuesResponse is returned by the nearby search.
type SearchVenuesResponse struct {
	Results []venue.Venue `json:"results"`
	Status  string        `json:"status"`
	Error   string        `json:"error,omitempty"`
}

// VenueDetailsResponse is returned by the venue details batch.
type VenueDetailsResponse struct {
	Results []venue.Venue `json:"results"`
	Status  string        `json:"status"`
}

// DirectionsResponse holds at most one route; Error explains an empty Routes.
type DirectionsResponse struct {
	Routes []Route `json:"routes"`
	Error  string  `json:"error,omitempty"`
}

// BookingLinks are reservation-contact links for a venue.
type BookingLinks struct {
	Venue           string `json:"venue"`
	GoogleSearchURL string `json:"googleSearchUrl"`
	SevenRoomsURL   string `json:"sevenroomsUrl"`
	WhatsAppMsg     string `json:"whatsappMsg"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /ping and /api/health.
type HealthResponse struct {
	Status             string `json:"status"`
	UpstreamConfigured bool   `json:"upstreamConfigured"`
}
