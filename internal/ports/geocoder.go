package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Contract for resolving a location string to coordinates.
type Geocoder interface {
	// Geocode returns coordinates for a normalized location string. It
	// fails with domain.LocationNotFoundError when there is no match and
	// domain.ServiceUnavailableError on transport or timeout failures.
	Geocode(ctx context.Context, location string) (domain.Coordinates, error)
}
