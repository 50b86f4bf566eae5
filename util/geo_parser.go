package util

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"crawl-server/models/geo"
)

const MAX_WAYPOINTS = 8
const WAYPOINT_SEPARATOR = "|"

var ErrInvalidCoordinate = errors.New("invalid coordinate, expected \"lat,lng\"")

// ParseCoordinate parses "lat,lng". Only the first two comma separated
// tokens are read; anything after them is ignored.
func ParseCoordinate(raw string) (geo.Coordinate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return geo.Coordinate{}, ErrInvalidCoordinate
	}

	lat, err := ParseFiniteFloat(parts[0])
	if err != nil {
		return geo.Coordinate{}, ErrInvalidCoordinate
	}
	lng, err := ParseFiniteFloat(parts[1])
	if err != nil {
		return geo.Coordinate{}, ErrInvalidCoordinate
	}
	return geo.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// ParseCoordinateList splits raw on separator, drops segments that are not
// valid coordinates and keeps at most maxCount of the rest, in order.
func ParseCoordinateList(raw, separator string, maxCount int) []geo.Coordinate {
	out := []geo.Coordinate{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, segment := range strings.Split(raw, separator) {
		if len(out) >= maxCount {
			break
		}
		c, err := ParseCoordinate(segment)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParsePositiveFloat returns fallback unless raw parses to a finite number > 0.
func ParsePositiveFloat(raw string, fallback float64) float64 {
	f, err := ParseFiniteFloat(raw)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

// ParseFiniteFloat parses a float and rejects NaN and infinities.
func ParseFiniteFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidCoordinate
	}
	return f, nil
}
