package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Route is the raw result from an external routing engine: an encoded
// polyline plus total distance and duration.
type Route struct {
	Geometry        string
	DistanceMiles   float64
	DurationSeconds float64
}

// Contract for retrieving a drivable route between two coordinates.
type RouteProvider interface {
	// GetRoute fails with domain.NoRouteFoundError when the endpoints
	// cannot be connected and domain.ServiceUnavailableError on transport
	// or timeout failures.
	GetRoute(ctx context.Context, start, end domain.Coordinates) (Route, error)
}
