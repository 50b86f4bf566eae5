package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"crawl-server/server/handlers"
)

type Router struct {
	venueHandler      *handlers.VenueHandler
	directionsHandler *handlers.DirectionsHandler
	geocodeHandler    *handlers.GeocodeHandler
	bookingHandler    *handlers.BookingHandler
	healthHandler     *handlers.HealthHandler
	middleware        *Middleware
	router            *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	directionsHandler *handlers.DirectionsHandler,
	geocodeHandler *handlers.GeocodeHandler,
	bookingHandler *handlers.BookingHandler,
	healthHandler *handlers.HealthHandler,
	middleware *Middleware,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:      venueHandler,
		directionsHandler: directionsHandler,
		geocodeHandler:    geocodeHandler,
		bookingHandler:    bookingHandler,
		healthHandler:     healthHandler,
		middleware:        middleware,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(mux.CORSMethodMiddleware(r.router), r.middleware.RequestID, r.middleware.CORS)

	r.handle("/ping", http.HandlerFunc(r.healthHandler.Health))
	r.handle("/api/health", r.limited(r.healthHandler.Health))
	// expects ?name={venue}&location={text}
	r.handle("/api/booking", r.limited(r.bookingHandler.GetBookingLinks))

	// expects ?address={text}
	r.handle("/api/geocode", r.upstream(r.geocodeHandler.Geocode))
	// expects ?lat={float}&lng={float}&radius={float}&keyword={text}
	r.handle("/api/venues/search", r.upstream(r.venueHandler.SearchVenues))
	// expects ?ids={id},{id},...
	r.handle("/api/venues/details", r.upstream(r.venueHandler.GetVenueDetails))
	// expects ?origin={lat,lng}&destination={lat,lng}&waypoints={lat,lng}|{lat,lng}
	r.handle("/api/directions", r.upstream(r.directionsHandler.GetDirections))
	r.handle("/api/directions/chart", r.upstream(r.directionsHandler.GetDirectionsChart))
}

func (r *Router) handle(path string, h http.Handler) {
	r.router.Handle(path, h).Methods(http.MethodGet, http.MethodOptions)
}

func (r *Router) limited(h http.HandlerFunc) http.Handler {
	return r.middleware.RateLimit(h)
}

// upstream wraps handlers that call the maps upstream: rate limit first,
// then the credential guard.
func (r *Router) upstream(h http.HandlerFunc) http.Handler {
	return r.middleware.RateLimit(r.middleware.CredentialGuard(h))
}
