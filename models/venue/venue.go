package venue

import (
	"fmt"

	"crawl-server/models/geo"
)

const UNKNOWN_VENUE_NAME = "Unknown"
const DEFAULT_PRICE_LEVEL = 3

// Venue is the canonical nightlife place record returned to callers.
type Venue struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    *geo.Coordinate `json:"location"`
	Rating      float64         `json:"rating"`
	RatingCount int             `json:"ratingCount"`
	PriceLevel  int             `json:"priceLevel"`
	Address     string          `json:"address"`
	Types       []string        `json:"types"`
	OpenNow     *bool           `json:"openNow,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Website     string          `json:"website,omitempty"`
	MapsURL     string          `json:"mapsUrl,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, address=%s)", v.ID, v.Name, v.Address)
}
