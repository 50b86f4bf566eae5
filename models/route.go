package models

// RouteLeg is one segment of a crawl between two consecutive stops.
type RouteLeg struct {
	DurationSeconds int    `json:"durationSeconds"`
	DurationText    string `json:"durationText"`
	DistanceMeters  int    `json:"distanceMeters"`
	DistanceText    string `json:"distanceText"`
}

// Route is the assembled multi-stop driving itinerary.
type Route struct {
	Legs                 []RouteLeg `json:"legs"`
	EncodedPolyline      string     `json:"encodedPolyline"`
	TotalDurationSeconds int        `json:"totalDurationSeconds"`
	TotalDurationText    string     `json:"totalDurationText"`
	TotalDistanceMeters  int        `json:"totalDistanceMeters"`
	TotalDistanceText    string     `json:"totalDistanceText"`
}
