package services

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawl-server/models/geo"
	"crawl-server/models/places"
)

func TestNormalizeVenue_MinimalRecord(t *testing.T) {
	v := NormalizeVenue(places.RawPlace{ID: "only-id"})

	assert.Equal(t, "only-id", v.ID)
	assert.Equal(t, "Unknown", v.Name)
	assert.Nil(t, v.Location)
	assert.Equal(t, 0.0, v.Rating)
	assert.Equal(t, 0, v.RatingCount)
	assert.Equal(t, 3, v.PriceLevel)
	assert.Equal(t, "", v.Address)
	assert.NotNil(t, v.Types)
	assert.Empty(t, v.Types)
	assert.Nil(t, v.OpenNow)
	assert.Empty(t, v.Phone)
	assert.Empty(t, v.Website)
	assert.Empty(t, v.MapsURL)
}

func TestNormalizeVenue_FullRecord(t *testing.T) {
	raw := places.RawPlace{
		ID:                  "p1",
		DisplayName:         &places.LocalizedText{Text: " Attaboy "},
		FormattedAddress:    strPtr("134 Eldridge St"),
		Location:            &places.LatLng{Latitude: floatPtr(40.7194), Longitude: floatPtr(-73.9912)},
		Rating:              floatPtr(4.7),
		UserRatingCount:     intPtr(1890),
		PriceLevel:          strPtr("PRICE_LEVEL_VERY_EXPENSIVE"),
		CurrentOpeningHours: &places.OpeningHours{OpenNow: boolPtr(false)},
		Types:               []string{"cocktail_bar", "bar"},
		NationalPhoneNumber: strPtr("(212) 555-0100"),
		WebsiteURI:          strPtr("https://example.com"),
		GoogleMapsURI:       strPtr("https://maps.google.com/?cid=4"),
	}

	v := NormalizeVenue(raw)

	assert.Equal(t, "Attaboy", v.Name)
	assert.Equal(t, "134 Eldridge St", v.Address)
	require.NotNil(t, v.Location)
	assert.Equal(t, geo.Coordinate{Latitude: 40.7194, Longitude: -73.9912}, *v.Location)
	assert.Equal(t, 4.7, v.Rating)
	assert.Equal(t, 1890, v.RatingCount)
	assert.Equal(t, 4, v.PriceLevel)
	assert.Equal(t, []string{"cocktail_bar", "bar"}, v.Types)
	require.NotNil(t, v.OpenNow)
	assert.False(t, *v.OpenNow)
	assert.Equal(t, "(212) 555-0100", v.Phone)
	assert.Equal(t, "https://example.com", v.Website)
	assert.Equal(t, "https://maps.google.com/?cid=4", v.MapsURL)
}

func TestNormalizeVenue_Fallbacks(t *testing.T) {
	raw := places.RawPlace{
		DisplayName:              &places.LocalizedText{Text: "   "},
		Location:                 &places.LatLng{Latitude: floatPtr(1)},
		Rating:                   floatPtr(math.NaN()),
		UserRatingCount:          intPtr(-4),
		RegularOpeningHours:      &places.OpeningHours{OpenNow: boolPtr(true)},
		InternationalPhoneNumber: strPtr("+1 212-555-0100"),
	}

	v := NormalizeVenue(raw)

	assert.Equal(t, "Unknown", v.Name)
	assert.Nil(t, v.Location)
	assert.Equal(t, 0.0, v.Rating)
	assert.Equal(t, 0, v.RatingCount)
	require.NotNil(t, v.OpenNow)
	assert.True(t, *v.OpenNow)
	assert.Equal(t, "+1 212-555-0100", v.Phone)
}

func TestNormalizeVenue_FromUpstreamJSON(t *testing.T) {
	docs := []string{
		`{}`,
		`{"id":"x","priceLevel":"SOMETHING_NEW"}`,
		`{"displayName":{},"location":{},"currentOpeningHours":{}}`,
		`{"types":[]}`,
	}
	for _, doc := range docs {
		var raw places.RawPlace
		require.NoError(t, json.Unmarshal([]byte(doc), &raw), doc)

		assert.NotPanics(t, func() {
			v := NormalizeVenue(raw)
			assert.Equal(t, 3, v.PriceLevel, doc)
		}, doc)
	}
}

func TestParsePriceLevel(t *testing.T) {
	tests := []struct {
		token *string
		want  int
	}{
		{nil, 3},
		{strPtr("PRICE_LEVEL_FREE"), 0},
		{strPtr("PRICE_LEVEL_INEXPENSIVE"), 1},
		{strPtr("PRICE_LEVEL_MODERATE"), 2},
		{strPtr("PRICE_LEVEL_EXPENSIVE"), 3},
		{strPtr("PRICE_LEVEL_VERY_EXPENSIVE"), 4},
		{strPtr("price_level_moderate"), 2},
		{strPtr("1"), 1},
		{strPtr("7"), 3},
		{strPtr("PRICE_LEVEL_UNSPECIFIED"), 3},
		{strPtr(""), 3},
		{strPtr("$$$"), 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriceLevel(tt.token))
	}
}
