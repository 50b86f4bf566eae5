package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawl-server/api"
	"crawl-server/api/google"
	"crawl-server/models"
	"crawl-server/models/places"
	"crawl-server/models/routes"
	services "crawl-server/service"
)

const testResourcesDir = "../../resources"

// failingMapsApi answers every upstream call with err.
type failingMapsApi struct {
	err error
}

func (f *failingMapsApi) Geocode(ctx context.Context, address string) (json.RawMessage, error) {
	return nil, f.err
}

func (f *failingMapsApi) SearchText(ctx context.Context, req places.SearchTextRequest) (*places.SearchTextResponse, error) {
	return nil, f.err
}

func (f *failingMapsApi) GetPlace(ctx context.Context, id string) (*places.RawPlace, error) {
	return nil, f.err
}

func (f *failingMapsApi) ComputeRoutes(ctx context.Context, req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error) {
	return nil, f.err
}

func fixtureApi() google.GoogleMapsAPI {
	return google.NewGoogleMapsApiClientMock(testResourcesDir)
}

func brokenApi() google.GoogleMapsAPI {
	return &failingMapsApi{err: &api.StatusError{StatusCode: 500, Status: "500 Internal Server Error"}}
}

func serve(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func newVenueHandler(mapsApi google.GoogleMapsAPI) *VenueHandler {
	return NewVenueHandler(services.NewVenueSearchService(mapsApi), services.NewVenueDetailsService(mapsApi))
}

func TestSearchVenues(t *testing.T) {
	rr := serve(newVenueHandler(fixtureApi()).SearchVenues, "/api/venues/search?lat=40.72&lng=-73.99&radius=2000&keyword=pub")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, CONTENT_TYPE_JSON, rr.Header().Get("Content-Type"))

	var body models.SearchVenuesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, models.STATUS_OK, body.Status)
	require.Len(t, body.Results, 3)
	assert.Equal(t, "Mr. Purple", body.Results[0].Name)
	assert.Equal(t, "Le Bain", body.Results[1].Name)
	assert.Equal(t, "McSorley's Old Ale House", body.Results[2].Name)
}

func TestSearchVenues_InvalidArgs(t *testing.T) {
	h := newVenueHandler(fixtureApi())

	for _, target := range []string{
		"/api/venues/search",
		"/api/venues/search?lat=abc&lng=1",
		"/api/venues/search?lat=40.7",
		"/api/venues/search?lat=NaN&lng=1",
	} {
		rr := serve(h.SearchVenues, target)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.NotEmpty(t, decodeError(t, rr), target)
	}
}

func TestSearchVenues_OutOfRangeIsClientError(t *testing.T) {
	rr := serve(newVenueHandler(brokenApi()).SearchVenues, "/api/venues/search?lat=200&lng=-73.99")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid lat/lng", decodeError(t, rr))
}

func TestSearchVenues_UpstreamUnavailable(t *testing.T) {
	rr := serve(newVenueHandler(brokenApi()).SearchVenues, "/api/venues/search?lat=40.72&lng=-73.99")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, decodeError(t, rr), "unavailable")
}

func TestGetVenueDetails(t *testing.T) {
	rr := serve(newVenueHandler(fixtureApi()).GetVenueDetails, "/api/venues/details?ids=a,%20b%20,,c")

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.VenueDetailsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, models.STATUS_OK, body.Status)
	require.Len(t, body.Results, 3)
	assert.Equal(t, "a", body.Results[0].ID)
	assert.Equal(t, "b", body.Results[1].ID)
	assert.Equal(t, "c", body.Results[2].ID)
}

func TestGetVenueDetails_MissingIDs(t *testing.T) {
	h := newVenueHandler(fixtureApi())

	for _, target := range []string{"/api/venues/details", "/api/venues/details?ids=,%20,"} {
		rr := serve(h.GetVenueDetails, target)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestGetVenueDetails_AllFailedIsEmptySuccess(t *testing.T) {
	rr := serve(newVenueHandler(brokenApi()).GetVenueDetails, "/api/venues/details?ids=a,b")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"results":[],"status":"OK"}`, rr.Body.String())
}

func TestGetDirections(t *testing.T) {
	h := NewDirectionsHandler(services.NewRouteService(fixtureApi()))
	rr := serve(h.GetDirections, "/api/directions?origin=40.72,-73.99&destination=40.74,-74.0&waypoints=40.73,-73.98")

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.DirectionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Empty(t, body.Error)
	require.Len(t, body.Routes, 1)
	require.Len(t, body.Routes[0].Legs, 2)
	assert.Equal(t, "7 mins", body.Routes[0].Legs[0].DurationText)
	assert.Equal(t, "820 m", body.Routes[0].Legs[1].DistanceText)
	assert.NotEmpty(t, body.Routes[0].EncodedPolyline)
}

func TestGetDirections_InvalidStops(t *testing.T) {
	h := NewDirectionsHandler(services.NewRouteService(fixtureApi()))

	rr := serve(h.GetDirections, "/api/directions?origin=abc&destination=40.74,-74.0")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid argument origin", decodeError(t, rr))

	rr = serve(h.GetDirections, "/api/directions?origin=40.72,-73.99")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid argument destination", decodeError(t, rr))
}

func TestGetDirections_UpstreamUnavailable(t *testing.T) {
	h := NewDirectionsHandler(services.NewRouteService(brokenApi()))
	rr := serve(h.GetDirections, "/api/directions?origin=40.72,-73.99&destination=40.74,-74.0")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetDirectionsChart(t *testing.T) {
	h := NewDirectionsHandler(services.NewRouteService(fixtureApi()))
	rr := serve(h.GetDirectionsChart, "/api/directions/chart?origin=40.72,-73.99&destination=40.74,-74.0")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, CONTENT_TYPE_HTML, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Bar Crawl Route")
}

func TestGeocode(t *testing.T) {
	h := NewGeocodeHandler(services.NewGeocodeService(fixtureApi()))
	rr := serve(h.Geocode, "/api/geocode?address=Lower+East+Side")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ChIJ-fake-les")
}

func TestGeocode_MissingAddress(t *testing.T) {
	h := NewGeocodeHandler(services.NewGeocodeService(fixtureApi()))
	rr := serve(h.Geocode, "/api/geocode?address=%20")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing address", decodeError(t, rr))
}

func TestGetBookingLinks(t *testing.T) {
	h := NewBookingHandler(services.NewBookingService())
	rr := serve(h.GetBookingLinks, "/api/booking?name=Attaboy&location=New+York")

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.BookingLinks
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Attaboy", body.Venue)
	assert.True(t, strings.HasPrefix(body.SevenRoomsURL, services.SEVENROOMS_SEARCH_URL))
}

func TestGetBookingLinks_MissingName(t *testing.T) {
	h := NewBookingHandler(services.NewBookingService())
	rr := serve(h.GetBookingLinks, "/api/booking")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealth(t *testing.T) {
	rr := serve(NewHealthHandler(false).Health, "/api/health")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","upstreamConfigured":false}`, rr.Body.String())
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"client input", &services.ClientInputError{Message: "bad"}, http.StatusBadRequest},
		{"upstream", &services.UpstreamUnavailableError{Operation: "geocode", Err: errors.New("boom")}, http.StatusBadGateway},
		{"not configured", services.ErrNotConfigured, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteServiceError(rr, test.err)
			assert.Equal(t, test.status, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}
