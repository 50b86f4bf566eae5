package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDuration renders seconds as "{m} mins" below one hour and
// "{h} hr {m} mins" from one hour on, after rounding to the nearest minute.
func FormatDuration(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	return fmt.Sprintf("%d hr %d mins", minutes/60, minutes%60)
}

// FormatDistance renders meters as "{m} m" below one kilometre and as
// kilometres with one decimal place otherwise.
func FormatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	km := math.Round(float64(meters)/100) / 10
	return fmt.Sprintf("%.1f km", km)
}

// ParseDurationSeconds reads a seconds token such as "754s" or "12.5s".
// Unparsable or negative tokens yield 0.
func ParseDurationSeconds(token string) int {
	token = strings.TrimSuffix(strings.TrimSpace(token), "s")
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(math.Round(f))
}
