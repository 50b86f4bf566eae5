package services

import (
	"context"
	"encoding/json"
	"strings"

	"crawl-server/api/google"
)

// GeocodeService resolves free-form addresses.
type GeocodeService struct {
	mapsApi google.GoogleMapsAPI
}

func NewGeocodeService(mapsApi google.GoogleMapsAPI) *GeocodeService {
	return &GeocodeService{mapsApi: mapsApi}
}

// Geocode returns the upstream geocoding result unmodified.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (json.RawMessage, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, clientInputErrorf("missing address")
	}
	result, err := s.mapsApi.Geocode(ctx, address)
	if err != nil {
		return nil, &UpstreamUnavailableError{Operation: "geocode", Err: err}
	}
	return result, nil
}
