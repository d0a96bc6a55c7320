package discovery

import "math"

const earthRadiusKm = 6371

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// DistanceKm returns the great-circle distance between two WGS84 points
// using the haversine formula. It is a pure numeric primitive: coordinates
// are not range-checked here and no rounding is applied (see RoundKm).
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for display.
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}
