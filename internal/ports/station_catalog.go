package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Port: a boundary for querying fuel station records from the catalog.
type StationCatalog interface {
	// QueryBoundingBox returns active stations with known coordinates
	// inside the given latitude/longitude box. The box is a coarse
	// pre-filter; callers apply the true-distance check themselves.
	QueryBoundingBox(ctx context.Context, latMin, latMax, lonMin, lonMax float64) ([]domain.Station, error)
}
