package geo

import (
	"math"

	"fuel-route-service/internal/domain"
)

// Earth's mean radius in miles.
const earthRadiusMiles = 3959

// Distance returns the great-circle distance between two points in miles
// using the haversine formula. Callers validate coordinates first; the
// computation itself is deterministic and symmetric.
func Distance(a, b domain.Coordinates) float64 {
	dlat := radians(b.Lat - a.Lat)
	dlon := radians(b.Lon - a.Lon)

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dlon/2)*math.Sin(dlon/2)

	return earthRadiusMiles * 2 * math.Asin(math.Sqrt(h))
}

// Bearing returns the initial forward azimuth from a to b in degrees [0, 360).
func Bearing(a, b domain.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dlon := radians(b.Lon - a.Lon)

	x := math.Sin(dlon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)

	deg := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
