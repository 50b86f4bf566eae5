package services

import (
	"context"

	"go.uber.org/zap"

	"crawl-server/api/google"
	"crawl-server/logger"
	"crawl-server/models"
	"crawl-server/models/geo"
	"crawl-server/models/routes"
	"crawl-server/util"
)

const NO_ROUTE_MESSAGE = "No route found"

// RouteService assembles multi-stop driving routes.
type RouteService struct {
	mapsApi google.GoogleMapsAPI
}

// NewRouteService constructs a new RouteService.
func NewRouteService(mapsApi google.GoogleMapsAPI) *RouteService {
	return &RouteService{mapsApi: mapsApi}
}

// ComputeRoute requests a driving route through the stops in the given order.
// When the upstream finds no route the response has no routes and carries
// the upstream detail in Error; that is not an error return.
func (s *RouteService) ComputeRoute(ctx context.Context, origin, destination geo.Coordinate, waypoints []geo.Coordinate) (*models.DirectionsResponse, error) {
	if !origin.Valid() {
		return nil, clientInputErrorf("invalid origin")
	}
	if !destination.Valid() {
		return nil, clientInputErrorf("invalid destination")
	}
	if len(waypoints) > util.MAX_WAYPOINTS {
		waypoints = waypoints[:util.MAX_WAYPOINTS]
	}
	for i, wp := range waypoints {
		if !wp.Valid() {
			return nil, clientInputErrorf("invalid waypoint %d", i+1)
		}
	}

	resp, err := s.mapsApi.ComputeRoutes(ctx, BuildRouteRequest(origin, destination, waypoints))
	if err != nil {
		return nil, &UpstreamUnavailableError{Operation: "routes", Err: err}
	}

	if resp == nil || len(resp.Routes) == 0 {
		detail := NO_ROUTE_MESSAGE
		if resp != nil && resp.Error != nil && resp.Error.Message != "" {
			detail = resp.Error.Message
		}
		logger.Info("no route between stops", zap.String("detail", detail), zap.Int("waypoints", len(waypoints)))
		return &models.DirectionsResponse{Routes: []models.Route{}, Error: detail}, nil
	}

	route := AssembleRoute(resp.Routes[0])
	return &models.DirectionsResponse{Routes: []models.Route{route}}, nil
}

// BuildRouteRequest keeps the waypoint order verbatim; no reordering is requested.
func BuildRouteRequest(origin, destination geo.Coordinate, waypoints []geo.Coordinate) routes.ComputeRoutesRequest {
	req := routes.ComputeRoutesRequest{
		Origin:                toWaypoint(origin),
		Destination:           toWaypoint(destination),
		TravelMode:            routes.TRAVEL_MODE_DRIVE,
		OptimizeWaypointOrder: false,
		ComputeAlternatives:   false,
	}
	for _, wp := range waypoints {
		req.Intermediates = append(req.Intermediates, toWaypoint(wp))
	}
	return req
}

// AssembleRoute converts one upstream route into a Route with formatted legs.
func AssembleRoute(raw routes.RawRoute) models.Route {
	route := models.Route{Legs: make([]models.RouteLeg, 0, len(raw.Legs))}
	for _, leg := range raw.Legs {
		seconds := util.ParseDurationSeconds(leg.Duration)
		meters := leg.DistanceMeters
		if meters < 0 {
			meters = 0
		}
		route.Legs = append(route.Legs, models.RouteLeg{
			DurationSeconds: seconds,
			DurationText:    util.FormatDuration(seconds),
			DistanceMeters:  meters,
			DistanceText:    util.FormatDistance(meters),
		})
		route.TotalDurationSeconds += seconds
		route.TotalDistanceMeters += meters
	}
	route.TotalDurationText = util.FormatDuration(route.TotalDurationSeconds)
	route.TotalDistanceText = util.FormatDistance(route.TotalDistanceMeters)

	if raw.Polyline != nil {
		route.EncodedPolyline = raw.Polyline.EncodedPolyline
	}
	return route
}

func toWaypoint(c geo.Coordinate) routes.Waypoint {
	return routes.Waypoint{Location: routes.Location{LatLng: routes.LatLng{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}}}
}
