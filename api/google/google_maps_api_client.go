package google

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"crawl-server/api"
	"crawl-server/logger"
	"crawl-server/models/places"
	"crawl-server/models/routes"
)

const GEOCODE_ENDPOINT = "/geocode/json"
const SEARCH_TEXT_ENDPOINT = "/places:searchText"
const PLACE_ENDPOINT_PREFIX = "/places/"
const COMPUTE_ROUTES_ENDPOINT = ":computeRoutes"

const API_KEY_HEADER = "X-Goog-Api-Key"
const FIELD_MASK_HEADER = "X-Goog-FieldMask"

// placeFields is the Place field mask shared by search and detail lookups.
const placeFields = "id,displayName,formattedAddress,location,rating,userRatingCount,priceLevel," +
	"currentOpeningHours.openNow,types,primaryType,nationalPhoneNumber,internationalPhoneNumber," +
	"websiteUri,googleMapsUri"

const routeFields = "routes.legs.duration,routes.legs.distanceMeters,routes.duration," +
	"routes.distanceMeters,routes.polyline.encodedPolyline"

var searchTextFields = prefixFields("places.", placeFields)

// GoogleMapsApiClient talks to the Geocoding, Places (New) and Routes APIs.
type GoogleMapsApiClient struct {
	geocoding *api.HTTPClient
	places    *api.HTTPClient
	routes    *api.HTTPClient
	apiKey    string
}

// NewGoogleMapsApiClient creates a client from one HTTPClient per upstream API.
func NewGoogleMapsApiClient(geocoding, places, routes *api.HTTPClient) *GoogleMapsApiClient {
	return &GoogleMapsApiClient{
		geocoding: geocoding,
		places:    places,
		routes:    routes,
	}
}

func (c *GoogleMapsApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// Geocode resolves an address and returns the upstream body untouched.
func (c *GoogleMapsApiClient) Geocode(ctx context.Context, address string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var response json.RawMessage
	if err := c.geocoding.Request(ctx, "GET", GEOCODE_ENDPOINT+"?"+params.Encode(), nil, nil, &response); err != nil {
		return nil, errors.Wrap(err, "geocode request failed")
	}
	return response, nil
}

// SearchText runs a Places text search biased toward a circle.
func (c *GoogleMapsApiClient) SearchText(ctx context.Context, req places.SearchTextRequest) (*places.SearchTextResponse, error) {
	logger.Debug("places text search",
		zap.String("query", req.TextQuery),
		zap.Int("max_results", req.MaxResultCount))

	var response places.SearchTextResponse
	if err := c.places.Request(ctx, "POST", SEARCH_TEXT_ENDPOINT, c.headers(searchTextFields), req, &response); err != nil {
		return nil, errors.Wrap(err, "places text search failed")
	}
	return &response, nil
}

// GetPlace looks up a single place by its identifier.
func (c *GoogleMapsApiClient) GetPlace(ctx context.Context, placeID string) (*places.RawPlace, error) {
	var response places.RawPlace
	endpoint := PLACE_ENDPOINT_PREFIX + url.PathEscape(placeID)
	if err := c.places.Request(ctx, "GET", endpoint, c.headers(placeFields), nil, &response); err != nil {
		return nil, errors.Wrapf(err, "place lookup %s failed", placeID)
	}
	return &response, nil
}

// ComputeRoutes asks the Routes API for routes through the given waypoints.
func (c *GoogleMapsApiClient) ComputeRoutes(ctx context.Context, req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error) {
	logger.Debug("compute routes",
		zap.Int("intermediates", len(req.Intermediates)),
		zap.String("travel_mode", req.TravelMode))

	var response routes.ComputeRoutesResponse
	if err := c.routes.Request(ctx, "POST", COMPUTE_ROUTES_ENDPOINT, c.headers(routeFields), req, &response); err != nil {
		return nil, errors.Wrap(err, "compute routes failed")
	}
	return &response, nil
}

func (c *GoogleMapsApiClient) headers(fieldMask string) map[string]string {
	return map[string]string{
		API_KEY_HEADER:    c.apiKey,
		FIELD_MASK_HEADER: fieldMask,
	}
}

func prefixFields(prefix, fields string) string {
	prefixed := funk.Map(strings.Split(fields, ","), func(f string) string {
		return prefix + f
	}).([]string)
	return strings.Join(prefixed, ",")
}
