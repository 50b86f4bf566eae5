package services

import (
	"strings"

	"github.com/thoas/go-funk"

	"crawl-server/models/places"
)

// nightlifeCategories are matched as substrings of the primary type and of
// every category tag.
var nightlifeCategories = []string{"bar", "night_club", "pub", "wine_bar", "cocktail_bar", "lounge"}

// nightlifeNameHints are matched case-insensitively against the display name.
var nightlifeNameHints = []string{"bar", "lounge", "club", "pub"}

// IsNightlifeVenue decides whether a search candidate is bar-like. Any one
// substring match on primary type, category tags or name is enough.
func IsNightlifeVenue(raw places.RawPlace) bool {
	if raw.PrimaryType != nil && containsAny(strings.ToLower(*raw.PrimaryType), nightlifeCategories) {
		return true
	}

	for _, t := range raw.Types {
		t = strings.ToLower(t)
		if containsAny(t, nightlifeCategories) || strings.Contains(t, "bar") {
			return true
		}
	}

	if raw.DisplayName != nil {
		return containsAny(strings.ToLower(raw.DisplayName.Text), nightlifeNameHints)
	}
	return false
}

func containsAny(s string, needles []string) bool {
	return funk.Find(needles, func(n string) bool {
		return strings.Contains(s, n)
	}) != nil
}
