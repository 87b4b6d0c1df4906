package services

import (
	"context"
	"fmt"
	"math"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
	"fuel-route-service/internal/ports"
)

const (
	// Sample the route at a fixed budget of points so catalog query count
	// is bounded regardless of route length.
	locatorSampleTarget = 50

	// Miles spanned by one degree of latitude.
	milesPerDegreeLat = 69.0

	// Floor for cos(latitude) in the longitude box width, so boxes stay
	// finite near the poles.
	cosLatFloor = 0.01
)

// FindStationsNearPath returns the active stations within maxDetourMiles of
// the route, deduplicated by station ID. The bounding box per sampled point
// is a coarse pre-filter; candidates are confirmed against the true
// great-circle distance before inclusion.
func FindStationsNearPath(
	ctx context.Context,
	catalog ports.StationCatalog,
	points []domain.Coordinates,
	maxDetourMiles float64,
) ([]domain.Station, error) {
	if len(points) == 0 {
		return nil, domain.ErrNoStationsNearRoute
	}
	if maxDetourMiles <= 0 {
		return nil, fmt.Errorf("find stations near path: max detour must be positive, got %v", maxDetourMiles)
	}

	stride := len(points) / locatorSampleTarget
	if stride < 1 {
		stride = 1
	}

	seen := make(map[int64]struct{})
	var found []domain.Station

	for i := 0; i < len(points); i += stride {
		point := points[i]

		latDelta := maxDetourMiles / milesPerDegreeLat
		lonDelta := maxDetourMiles / (milesPerDegreeLat * math.Max(math.Cos(point.Lat*math.Pi/180), cosLatFloor))

		stations, err := catalog.QueryBoundingBox(ctx,
			point.Lat-latDelta, point.Lat+latDelta,
			point.Lon-lonDelta, point.Lon+lonDelta)
		if err != nil {
			return nil, fmt.Errorf("find stations near path: query catalog: %w", err)
		}

		for _, s := range stations {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			if geo.Distance(point, s.Coordinates) > maxDetourMiles {
				continue
			}
			seen[s.ID] = struct{}{}
			found = append(found, s)
		}
	}

	if len(found) == 0 {
		return nil, domain.ErrNoStationsNearRoute
	}

	return found, nil
}
