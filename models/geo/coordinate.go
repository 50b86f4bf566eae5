package geo

import (
	"fmt"
	"math"
	"strconv"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

const MAX_LATITUDE = 90.0
const MAX_LONGITUDE = 180.0

// Valid reports whether both components are finite and within WGS84 range.
func (c Coordinate) Valid() bool {
	return isFinite(c.Latitude) && isFinite(c.Longitude) &&
		math.Abs(c.Latitude) <= MAX_LATITUDE && math.Abs(c.Longitude) <= MAX_LONGITUDE
}

// String renders the coordinate as "lat,lng".
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func (c Coordinate) ToString() string {
	return fmt.Sprintf("Coordinate(lat=%f, lng=%f)", c.Latitude, c.Longitude)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
