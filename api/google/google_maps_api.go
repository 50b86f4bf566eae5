package google

import (
	"context"
	"encoding/json"

	"crawl-server/models/places"
	"crawl-server/models/routes"
)

// GoogleMapsAPI defines the upstream geographic calls the crawl server makes.
// Every method issues exactly one upstream request.
type GoogleMapsAPI interface {
	Geocode(ctx context.Context, address string) (json.RawMessage, error)
	SearchText(ctx context.Context, req places.SearchTextRequest) (*places.SearchTextResponse, error)
	GetPlace(ctx context.Context, placeID string) (*places.RawPlace, error)
	ComputeRoutes(ctx context.Context, req routes.ComputeRoutesRequest) (*routes.ComputeRoutesResponse, error)
}
