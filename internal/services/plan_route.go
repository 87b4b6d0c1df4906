package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// RoutePlanner orchestrates a full planning request: geocode the endpoints,
// fetch the route, index its geometry, locate and project candidate
// stations, and run the fuel-stop planner.
//
// Each request owns its own working state; only the plan cache is shared
// across requests, so concurrent planning for different location pairs is
// safe.
type RoutePlanner struct {
	geocoder ports.Geocoder
	routes   ports.RouteProvider
	catalog  ports.StationCatalog
	plans    ports.PlanCache

	vehicle        domain.VehicleProfile
	maxDetourMiles float64
	planTTL        time.Duration
}

// DefaultMaxDetourMiles is how far off the route a station may sit and
// still count as a candidate stop.
const DefaultMaxDetourMiles = 15.0

// NewRoutePlanner validates the vehicle profile once at construction. The
// plan cache is optional; a nil cache disables result caching.
func NewRoutePlanner(
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	catalog ports.StationCatalog,
	plans ports.PlanCache,
	vehicle domain.VehicleProfile,
	maxDetourMiles float64,
	planTTL time.Duration,
) (*RoutePlanner, error) {
	// Re-derive the profile so externally assembled values go through the
	// same consistency checks as freshly built ones.
	validated, err := domain.NewVehicleProfileWithTank(
		vehicle.RangeMiles, vehicle.MPG, vehicle.TankCapacityGal, vehicle.SafetyMargin)
	if err != nil {
		return nil, fmt.Errorf("new route planner: %w", err)
	}

	if maxDetourMiles <= 0 {
		maxDetourMiles = DefaultMaxDetourMiles
	}

	return &RoutePlanner{
		geocoder:       geocoder,
		routes:         routes,
		catalog:        catalog,
		plans:          plans,
		vehicle:        validated,
		maxDetourMiles: maxDetourMiles,
		planTTL:        planTTL,
	}, nil
}

// Vehicle returns the validated profile the planner runs with.
func (p *RoutePlanner) Vehicle() domain.VehicleProfile { return p.vehicle }

// PlanRoute plans the route and fuel stops between two location strings.
func (p *RoutePlanner) PlanRoute(ctx context.Context, startLocation, endLocation string) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "planner.PlanRoute")(&err)

	start, err := domain.NormalizeLocation(startLocation)
	if err != nil {
		return nil, fmt.Errorf("plan route: start location: %w", err)
	}
	end, err := domain.NormalizeLocation(endLocation)
	if err != nil {
		return nil, fmt.Errorf("plan route: end location: %w", err)
	}

	cacheKey := start + "|" + end
	if p.plans != nil {
		plan, ok, err := p.plans.GetPlan(ctx, cacheKey)
		if err != nil {
			log.Printf("plan cache read failed key=%q err=%v", cacheKey, err)
		} else if ok {
			return plan, nil
		}
	}

	startCoords, err := p.geocoder.Geocode(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("plan route: geocode %q: %w", start, err)
	}
	endCoords, err := p.geocoder.Geocode(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("plan route: geocode %q: %w", end, err)
	}

	route, err := p.routes.GetRoute(ctx, startCoords, endCoords)
	if err != nil {
		return nil, fmt.Errorf("plan route: get route %q -> %q: %w", start, end, err)
	}

	points, err := geo.DecodePolyline(route.Geometry)
	if err != nil {
		return nil, fmt.Errorf("plan route: decode geometry: %w", err)
	}
	if len(points) == 0 {
		return nil, &domain.NoRouteFoundError{Start: startCoords, End: endCoords}
	}

	path := geo.IndexPath(points)

	// Indexed length should agree with the provider's total; a large gap
	// points at degenerate geometry, so flag it but keep going.
	if indexed := geo.TotalMiles(path); route.DistanceMiles > 0 &&
		math.Abs(indexed-route.DistanceMiles)/route.DistanceMiles > 0.10 {
		log.Printf("path length mismatch indexed=%.1fmi provider=%.1fmi start=%q end=%q",
			indexed, route.DistanceMiles, start, end)
	}

	stations, err := FindStationsNearPath(ctx, p.catalog, points, p.maxDetourMiles)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	projected := ProjectStations(stations, path)

	fuelPlan, err := PlanFuelStops(projected, route.DistanceMiles, p.vehicle)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	plan := &domain.RoutePlan{
		StartLocation:    start,
		EndLocation:      end,
		StartCoordinates: startCoords,
		EndCoordinates:   endCoords,
		Geometry:         route.Geometry,
		DistanceMiles:    round2(route.DistanceMiles),
		DurationSeconds:  route.DurationSeconds,
		FuelStops:        fuelPlan.Stops,
		TotalFuelCost:    fuelPlan.TotalCost,
		TotalFuelGallons: fuelPlan.TotalGallons,
	}

	if p.plans != nil {
		if err := p.plans.SetPlan(ctx, cacheKey, plan, p.planTTL); err != nil {
			log.Printf("plan cache write failed key=%q err=%v", cacheKey, err)
		}
	}

	return plan, nil
}
