// models/routes/compute_routes.go
package routes

const TRAVEL_MODE_DRIVE = "DRIVE"

// ComputeRoutesRequest is the body of POST /directions/v2:computeRoutes.
type ComputeRoutesRequest struct {
	Origin                Waypoint   `json:"origin"`
	Destination           Waypoint   `json:"destination"`
	Intermediates         []Waypoint `json:"intermediates,omitempty"`
	TravelMode            string     `json:"travelMode"`
	OptimizeWaypointOrder bool       `json:"optimizeWaypointOrder"`
	ComputeAlternatives   bool       `json:"computeAlternativeRoutes"`
}

type Waypoint struct {
	Location Location `json:"location"`
}

type Location struct {
	LatLng LatLng `json:"latLng"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ComputeRoutesResponse is the upstream answer. Routes is empty when no
// feasible route exists; Error is set when the upstream attached detail.
type ComputeRoutesResponse struct {
	Routes []RawRoute   `json:"routes,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

type RawRoute struct {
	Legs           []RawLeg  `json:"legs,omitempty"`
	DistanceMeters int       `json:"distanceMeters,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	Polyline       *Polyline `json:"polyline,omitempty"`
}

// RawLeg carries duration as a seconds token such as "754s".
type RawLeg struct {
	DistanceMeters int    `json:"distanceMeters,omitempty"`
	Duration       string `json:"duration,omitempty"`
}

type Polyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type ErrorDetail struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}
