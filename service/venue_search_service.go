package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"crawl-server/api"
	"crawl-server/api/google"
	"crawl-server/logger"
	"crawl-server/models"
	"crawl-server/models/places"
	"crawl-server/models/venue"
)

// VenueSearchService runs nearby nightlife searches.
type VenueSearchService struct {
	mapsApi google.GoogleMapsAPI
}

// NewVenueSearchService constructs a new VenueSearchService.
func NewVenueSearchService(mapsApi google.GoogleMapsAPI) *VenueSearchService {
	return &VenueSearchService{mapsApi: mapsApi}
}

// Search issues one text search around the query coordinate, keeps the
// bar-like candidates in upstream order and normalizes them.
func (s *VenueSearchService) Search(ctx context.Context, query models.SearchQuery) (*models.SearchVenuesResponse, error) {
	if !query.Coordinate.Valid() {
		return nil, clientInputErrorf("invalid lat/lng")
	}
	if query.RadiusMeters <= 0 {
		query.RadiusMeters = models.DEFAULT_SEARCH_RADIUS_METERS
	}
	if query.RadiusMeters > models.MAX_SEARCH_RADIUS_METERS {
		query.RadiusMeters = models.MAX_SEARCH_RADIUS_METERS
	}
	if strings.TrimSpace(query.Keyword) == "" {
		query.Keyword = models.DEFAULT_SEARCH_KEYWORD
	}

	req := places.SearchTextRequest{
		TextQuery:      query.Keyword,
		MaxResultCount: models.MAX_SEARCH_RESULTS,
		LocationBias: &places.LocationBias{Circle: places.Circle{
			Center: places.Center{
				Latitude:  query.Coordinate.Latitude,
				Longitude: query.Coordinate.Longitude,
			},
			Radius: query.RadiusMeters,
		}},
	}

	resp, err := s.mapsApi.SearchText(ctx, req)
	if err != nil {
		var decodeErr *api.DecodeError
		if errors.As(err, &decodeErr) {
			logger.Warn("places search returned an unreadable body", zap.Error(err))
			return &models.SearchVenuesResponse{
				Results: []venue.Venue{},
				Status:  models.STATUS_ERROR,
				Error:   decodeErr.Error(),
			}, nil
		}
		return nil, &UpstreamUnavailableError{Operation: "places search", Err: err}
	}

	if resp == nil || len(resp.Places) == 0 {
		return &models.SearchVenuesResponse{Results: []venue.Venue{}, Status: models.STATUS_ZERO_RESULTS}, nil
	}

	results := FilterNightlife(resp.Places, models.MAX_SEARCH_RESULTS)
	logger.Info("venue search finished",
		zap.String("center", query.Coordinate.ToString()),
		zap.String("keyword", query.Keyword),
		zap.Float64("radius", query.RadiusMeters),
		zap.Int("candidates", len(resp.Places)),
		zap.Int("results", len(results)))

	status := models.STATUS_OK
	if len(results) == 0 {
		status = models.STATUS_ZERO_RESULTS
	}
	return &models.SearchVenuesResponse{Results: results, Status: status}, nil
}

// FilterNightlife classifies candidates in order and normalizes at most
// limit of the survivors.
func FilterNightlife(candidates []places.RawPlace, limit int) []venue.Venue {
	results := make([]venue.Venue, 0, len(candidates))
	for _, c := range candidates {
		if len(results) >= limit {
			break
		}
		if !IsNightlifeVenue(c) {
			continue
		}
		results = append(results, NormalizeVenue(c))
	}
	return results
}
