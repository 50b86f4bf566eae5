package services

import (
	"context"
	"encoding/json"
	"sync"

	"crawl-server/models/places"
	"crawl-server/models/routes"
)

// fakeMapsApi is a programmable GoogleMapsAPI that records its calls.
type fakeMapsApi struct {
	mu sync.Mutex

	geocode       func(address string) (json.RawMessage, error)
	searchText    func(req places.SearchTextRequest) (*places.SearchTextResponse, error)
	getPlace      func(id string) (*places.RawPlace, error)
	computeRoutes func(req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error)

	searchRequests []places.SearchTextRequest
	placeIDs       []string
	routeRequests  []routes.ComputeRoutesRequest
	geocodeCalls   int
}

func (f *fakeMapsApi) Geocode(ctx context.Context, address string) (json.RawMessage, error) {
	f.mu.Lock()
	f.geocodeCalls++
	f.mu.Unlock()
	return f.geocode(address)
}

func (f *fakeMapsApi) SearchText(ctx context.Context, req places.SearchTextRequest) (*places.SearchTextResponse, error) {
	f.mu.Lock()
	f.searchRequests = append(f.searchRequests, req)
	f.mu.Unlock()
	return f.searchText(req)
}

func (f *fakeMapsApi) GetPlace(ctx context.Context, id string) (*places.RawPlace, error) {
	f.mu.Lock()
	f.placeIDs = append(f.placeIDs, id)
	f.mu.Unlock()
	return f.getPlace(id)
}

func (f *fakeMapsApi) ComputeRoutes(ctx context.Context, req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error) {
	f.mu.Lock()
	f.routeRequests = append(f.routeRequests, req)
	f.mu.Unlock()
	return f.computeRoutes(req)
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }

func namedPlace(id, name string, types ...string) places.RawPlace {
	return places.RawPlace{
		ID:          id,
		DisplayName: &places.LocalizedText{Text: name},
		Types:       types,
	}
}
