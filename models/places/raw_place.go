// models/places/raw_place.go
package places

// RawPlace is a place record as returned by the Places API (New).
// Every field is optional; only the normalizer reads it.
type RawPlace struct {
	ID                       string         `json:"id,omitempty"`
	DisplayName              *LocalizedText `json:"displayName,omitempty"`
	FormattedAddress         *string        `json:"formattedAddress,omitempty"`
	Location                 *LatLng        `json:"location,omitempty"`
	Rating                   *float64       `json:"rating,omitempty"`
	UserRatingCount          *int           `json:"userRatingCount,omitempty"`
	PriceLevel               *string        `json:"priceLevel,omitempty"`
	CurrentOpeningHours      *OpeningHours  `json:"currentOpeningHours,omitempty"`
	RegularOpeningHours      *OpeningHours  `json:"regularOpeningHours,omitempty"`
	Types                    []string       `json:"types,omitempty"`
	PrimaryType              *string        `json:"primaryType,omitempty"`
	NationalPhoneNumber      *string        `json:"nationalPhoneNumber,omitempty"`
	InternationalPhoneNumber *string        `json:"internationalPhoneNumber,omitempty"`
	WebsiteURI               *string        `json:"websiteUri,omitempty"`
	GoogleMapsURI            *string        `json:"googleMapsUri,omitempty"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type LatLng struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type OpeningHours struct {
	OpenNow *bool `json:"openNow,omitempty"`
}
