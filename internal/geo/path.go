package geo

import "fuel-route-service/internal/domain"

// PathPoint is a route vertex plus its cumulative along-path distance in
// miles from the route's first point. A PathPoint sequence is produced once
// per route, is non-decreasing in CumulativeMiles, and is never mutated.
type PathPoint struct {
	domain.Coordinates
	CumulativeMiles float64
}

// IndexPath computes the cumulative haversine distance at every vertex.
// Entry 0 is always 0.
func IndexPath(points []domain.Coordinates) []PathPoint {
	if len(points) == 0 {
		return nil
	}

	path := make([]PathPoint, len(points))
	path[0] = PathPoint{Coordinates: points[0]}

	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
		path[i] = PathPoint{Coordinates: points[i], CumulativeMiles: total}
	}

	return path
}

// TotalMiles is the cumulative distance at the final vertex.
func TotalMiles(path []PathPoint) float64 {
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1].CumulativeMiles
}
