package services

import (
	"math"
	"strconv"
	"strings"

	"crawl-server/models/geo"
	"crawl-server/models/places"
	"crawl-server/models/venue"
)

var priceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// NormalizeVenue converts an upstream place into a Venue. It never fails;
// missing or unusable fields fall back to their documented defaults.
func NormalizeVenue(raw places.RawPlace) venue.Venue {
	v := venue.Venue{
		ID:         raw.ID,
		Name:       venue.UNKNOWN_VENUE_NAME,
		Location:   normalizeLocation(raw.Location),
		PriceLevel: ParsePriceLevel(raw.PriceLevel),
		Address:    stringOrEmpty(raw.FormattedAddress),
		Types:      []string{},
		OpenNow:    normalizeOpenNow(raw),
		Website:    stringOrEmpty(raw.WebsiteURI),
		MapsURL:    stringOrEmpty(raw.GoogleMapsURI),
	}

	if raw.DisplayName != nil {
		if name := strings.TrimSpace(raw.DisplayName.Text); name != "" {
			v.Name = name
		}
	}
	if raw.Rating != nil && isFinite(*raw.Rating) && *raw.Rating >= 0 {
		v.Rating = *raw.Rating
	}
	if raw.UserRatingCount != nil && *raw.UserRatingCount >= 0 {
		v.RatingCount = *raw.UserRatingCount
	}
	if len(raw.Types) > 0 {
		v.Types = append(v.Types, raw.Types...)
	}

	v.Phone = stringOrEmpty(raw.NationalPhoneNumber)
	if v.Phone == "" {
		v.Phone = stringOrEmpty(raw.InternationalPhoneNumber)
	}
	return v
}

// ParsePriceLevel maps an upstream price tier token to 0-4. Absent or
// unrecognized tokens map to venue.DEFAULT_PRICE_LEVEL.
func ParsePriceLevel(token *string) int {
	if token == nil {
		return venue.DEFAULT_PRICE_LEVEL
	}
	t := strings.ToUpper(strings.TrimSpace(*token))
	if level, ok := priceLevels[t]; ok {
		return level
	}
	if n, err := strconv.Atoi(t); err == nil && n >= 0 && n <= 4 {
		return n
	}
	return venue.DEFAULT_PRICE_LEVEL
}

func normalizeLocation(loc *places.LatLng) *geo.Coordinate {
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return nil
	}
	c := geo.Coordinate{Latitude: *loc.Latitude, Longitude: *loc.Longitude}
	if !c.Valid() {
		return nil
	}
	return &c
}

func normalizeOpenNow(raw places.RawPlace) *bool {
	if raw.CurrentOpeningHours != nil && raw.CurrentOpeningHours.OpenNow != nil {
		open := *raw.CurrentOpeningHours.OpenNow
		return &open
	}
	if raw.RegularOpeningHours != nil && raw.RegularOpeningHours.OpenNow != nil {
		open := *raw.RegularOpeningHours.OpenNow
		return &open
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
