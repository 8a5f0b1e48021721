package utils

import (
	"fmt"
	"math"
)

// earthRadiusKm is the great-circle radius used by the haversine formula
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude pairs
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders a kilometer distance as the wire string "X.XX km"
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
