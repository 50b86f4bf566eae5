package models

import "crawl-server/models/geo"

const DEFAULT_SEARCH_RADIUS_METERS = 5000.0
const MAX_SEARCH_RADIUS_METERS = 50000.0
const DEFAULT_SEARCH_KEYWORD = "bar lounge nightclub"
const MAX_SEARCH_RESULTS = 20

// SearchQuery is a nearby venue search biased toward Coordinate.
type SearchQuery struct {
	Coordinate   geo.Coordinate
	RadiusMeters float64
	Keyword      string
}
