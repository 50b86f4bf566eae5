// models/places/search_text.go
package places

// SearchTextRequest is the body of POST /places:searchText.
type SearchTextRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LocationBias   *LocationBias `json:"locationBias,omitempty"`
}

type LocationBias struct {
	Circle Circle `json:"circle"`
}

type Circle struct {
	Center Center  `json:"center"`
	Radius float64 `json:"radius"`
}

type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchTextResponse is the body returned by POST /places:searchText.
// Places is nil when the upstream found no candidates.
type SearchTextResponse struct {
	Places []RawPlace `json:"places,omitempty"`
}
