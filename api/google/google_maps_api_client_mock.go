package google

import (
	"context"
	"encoding/json"
	"path/filepath"

	"go.uber.org/zap"

	"crawl-server/config"
	"crawl-server/logger"
	"crawl-server/models/places"
	"crawl-server/models/routes"
	"crawl-server/util"
)

// GoogleMapsApiClientMock serves canned upstream answers from JSON fixtures.
type GoogleMapsApiClientMock struct {
	resourcesDir string
}

// NewGoogleMapsApiClientMock creates a mock reading fixtures from resourcesDir.
func NewGoogleMapsApiClientMock(resourcesDir string) *GoogleMapsApiClientMock {
	return &GoogleMapsApiClientMock{resourcesDir: resourcesDir}
}

func (c *GoogleMapsApiClientMock) Geocode(ctx context.Context, address string) (json.RawMessage, error) {
	return util.ReadRawJSON(c.path(config.GEOCODE_RESPONSE_RESOURCE))
}

func (c *GoogleMapsApiClientMock) SearchText(ctx context.Context, req places.SearchTextRequest) (*places.SearchTextResponse, error) {
	response, err := util.ReadSearchTextResponseFromJSON(c.path(config.SEARCH_TEXT_RESPONSE_RESOURCE))
	if err != nil {
		logger.Warn("could not read search text fixture", zap.Error(err))
		return nil, err
	}
	return response, nil
}

// GetPlace returns the detail fixture stamped with the requested identifier.
func (c *GoogleMapsApiClientMock) GetPlace(ctx context.Context, placeID string) (*places.RawPlace, error) {
	place, err := util.ReadPlaceFromJSON(c.path(config.PLACE_DETAILS_RESOURCE))
	if err != nil {
		logger.Warn("could not read place fixture", zap.Error(err))
		return nil, err
	}
	place.ID = placeID
	return place, nil
}

func (c *GoogleMapsApiClientMock) ComputeRoutes(ctx context.Context, req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error) {
	return util.ReadComputeRoutesResponseFromJSON(c.path(config.COMPUTE_ROUTES_RESPONSE_RESOURCE))
}

func (c *GoogleMapsApiClientMock) path(resource string) string {
	return filepath.Join(c.resourcesDir, resource)
}
