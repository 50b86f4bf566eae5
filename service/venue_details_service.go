package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"crawl-server/api/google"
	"crawl-server/logger"
	"crawl-server/models"
	"crawl-server/models/venue"
)

const MAX_DETAIL_IDS = 10

var ErrPlaceNotFound = errors.New("place not found")

// DetailResult is the outcome of one place lookup. Exactly one of Venue and
// Err is set.
type DetailResult struct {
	ID    string
	Venue *venue.Venue
	Err   error
}

// VenueDetailsService looks up a bounded batch of venues by identifier.
type VenueDetailsService struct {
	mapsApi google.GoogleMapsAPI
}

// NewVenueDetailsService constructs a new VenueDetailsService.
func NewVenueDetailsService(mapsApi google.GoogleMapsAPI) *VenueDetailsService {
	return &VenueDetailsService{mapsApi: mapsApi}
}

// SanitizeVenueIDs trims identifiers, drops blanks and keeps the first
// MAX_DETAIL_IDS in input order.
func SanitizeVenueIDs(ids []string) []string {
	trimmed := funk.Map(ids, strings.TrimSpace).([]string)
	nonEmpty := funk.Filter(trimmed, func(id string) bool {
		return id != ""
	}).([]string)
	if len(nonEmpty) > MAX_DETAIL_IDS {
		nonEmpty = nonEmpty[:MAX_DETAIL_IDS]
	}
	return nonEmpty
}

// FetchDetails looks the identifiers up concurrently and returns the venues
// that resolved, in input order. Failed lookups are dropped.
func (s *VenueDetailsService) FetchDetails(ctx context.Context, ids []string) (*models.VenueDetailsResponse, error) {
	ids = SanitizeVenueIDs(ids)
	if len(ids) == 0 {
		return nil, clientInputErrorf("missing venue ids")
	}

	results := make([]venue.Venue, 0, len(ids))
	for _, r := range s.Lookup(ctx, ids) {
		if r.Err != nil {
			logger.Warn("dropping venue lookup", zap.String("venue_id", r.ID), zap.Error(r.Err))
			continue
		}
		results = append(results, *r.Venue)
	}

	logger.Info("venue details finished", zap.Int("requested", len(ids)), zap.Int("resolved", len(results)))
	return &models.VenueDetailsResponse{Results: results, Status: models.STATUS_OK}, nil
}

// Lookup fans out one upstream call per identifier and joins on all of them.
// The returned slice is aligned with ids.
func (s *VenueDetailsService) Lookup(ctx context.Context, ids []string) []DetailResult {
	out := make([]DetailResult, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			out[i] = s.lookupOne(ctx, id)
		}(i, id)
	}
	wg.Wait()

	return out
}

func (s *VenueDetailsService) lookupOne(ctx context.Context, id string) DetailResult {
	place, err := s.mapsApi.GetPlace(ctx, id)
	if err != nil {
		return DetailResult{ID: id, Err: err}
	}
	if place == nil {
		return DetailResult{ID: id, Err: ErrPlaceNotFound}
	}
	if place.ID == "" {
		place.ID = id
	}
	v := NormalizeVenue(*place)
	logger.Debug("resolved venue", zap.String("venue", v.ToString()))
	return DetailResult{ID: id, Venue: &v}
}
