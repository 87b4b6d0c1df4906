package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// Decodes to (38.5, -120.2), (40.7, -120.95), (43.252, -126.453).
const testGeometry = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

type fakeGeocoder struct {
	coords map[string]domain.Coordinates
	calls  int
}

func (f *fakeGeocoder) Geocode(_ context.Context, location string) (domain.Coordinates, error) {
	f.calls++
	c, ok := f.coords[location]
	if !ok {
		return domain.Coordinates{}, &domain.LocationNotFoundError{Location: location}
	}
	return c, nil
}

type fakeRouteProvider struct {
	route ports.Route
	err   error
}

func (f *fakeRouteProvider) GetRoute(_ context.Context, _, _ domain.Coordinates) (ports.Route, error) {
	if f.err != nil {
		return ports.Route{}, f.err
	}
	return f.route, nil
}

type fakePlanCache struct {
	plans map[string]*domain.RoutePlan
	sets  int
}

func newFakePlanCache() *fakePlanCache {
	return &fakePlanCache{plans: make(map[string]*domain.RoutePlan)}
}

func (f *fakePlanCache) GetPlan(_ context.Context, key string) (*domain.RoutePlan, bool, error) {
	plan, ok := f.plans[key]
	return plan, ok, nil
}

func (f *fakePlanCache) SetPlan(_ context.Context, key string, plan *domain.RoutePlan, _ time.Duration) error {
	f.sets++
	f.plans[key] = plan
	return nil
}

func testPlanner(t *testing.T, geocoder ports.Geocoder, routes ports.RouteProvider, catalog ports.StationCatalog, plans ports.PlanCache) *RoutePlanner {
	t.Helper()
	planner, err := NewRoutePlanner(geocoder, routes, catalog, plans,
		testVehicle(t, 500, 10, 0.9), 15, time.Hour)
	if err != nil {
		t.Fatalf("NewRoutePlanner: %v", err)
	}
	return planner
}

func TestPlanRoute(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]domain.Coordinates{
		"Sacramento, CA": {Lat: 38.5, Lon: -120.2},
		"Eureka, CA":     {Lat: 43.252, Lon: -126.453},
	}}
	routes := &fakeRouteProvider{route: ports.Route{
		Geometry:        testGeometry,
		DistanceMiles:   480,
		DurationSeconds: 28800,
	}}
	catalog := &fakeCatalog{stations: []domain.Station{
		catalogStation(1, 38.5, -120.2),
	}}
	cache := newFakePlanCache()

	planner := testPlanner(t, geocoder, routes, catalog, cache)

	plan, err := planner.PlanRoute(context.Background(), "Sacramento, CA", "Eureka, CA")
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}

	if plan.StartLocation != "Sacramento, CA" || plan.EndLocation != "Eureka, CA" {
		t.Errorf("locations = (%q, %q)", plan.StartLocation, plan.EndLocation)
	}
	if plan.Geometry != testGeometry {
		t.Errorf("geometry not carried through: %q", plan.Geometry)
	}
	if plan.DistanceMiles != 480 {
		t.Errorf("distance = %v, want 480", plan.DistanceMiles)
	}
	// 480 miles is within the 500-mile range on a full tank.
	if len(plan.FuelStops) != 0 {
		t.Errorf("got %d stops, want 0: %+v", len(plan.FuelStops), plan.FuelStops)
	}
	if cache.sets != 1 {
		t.Errorf("cache writes = %d, want 1", cache.sets)
	}
}

func TestPlanRouteServesFromCache(t *testing.T) {
	cached := &domain.RoutePlan{StartLocation: "Sacramento, CA", EndLocation: "Eureka, CA"}
	cache := newFakePlanCache()
	cache.plans["Sacramento, CA|Eureka, CA"] = cached

	geocoder := &fakeGeocoder{}
	planner := testPlanner(t, geocoder, &fakeRouteProvider{}, &fakeCatalog{}, cache)

	plan, err := planner.PlanRoute(context.Background(), "Sacramento,   CA", "Eureka, CA")
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if plan != cached {
		t.Error("expected the cached plan to be returned")
	}
	if geocoder.calls != 0 {
		t.Errorf("geocoder called %d times on a cache hit", geocoder.calls)
	}
}

func TestPlanRouteWorksWithoutCache(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]domain.Coordinates{
		"Sacramento, CA": {Lat: 38.5, Lon: -120.2},
		"Eureka, CA":     {Lat: 43.252, Lon: -126.453},
	}}
	routes := &fakeRouteProvider{route: ports.Route{Geometry: testGeometry, DistanceMiles: 480}}
	catalog := &fakeCatalog{stations: []domain.Station{catalogStation(1, 38.5, -120.2)}}

	planner := testPlanner(t, geocoder, routes, catalog, nil)

	if _, err := planner.PlanRoute(context.Background(), "Sacramento, CA", "Eureka, CA"); err != nil {
		t.Fatalf("PlanRoute without cache: %v", err)
	}
}

func TestPlanRouteErrors(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]domain.Coordinates{
		"Sacramento, CA": {Lat: 38.5, Lon: -120.2},
		"Eureka, CA":     {Lat: 43.252, Lon: -126.453},
	}}

	t.Run("invalid location", func(t *testing.T) {
		planner := testPlanner(t, geocoder, &fakeRouteProvider{}, &fakeCatalog{}, nil)
		_, err := planner.PlanRoute(context.Background(), "x", "Eureka, CA")
		var invalid *domain.InvalidLocationError
		if !errors.As(err, &invalid) {
			t.Errorf("got err %v, want InvalidLocationError", err)
		}
	})

	t.Run("unknown location", func(t *testing.T) {
		planner := testPlanner(t, geocoder, &fakeRouteProvider{}, &fakeCatalog{}, nil)
		_, err := planner.PlanRoute(context.Background(), "Nowhereville, ZZ", "Eureka, CA")
		var notFound *domain.LocationNotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("got err %v, want LocationNotFoundError", err)
		}
	})

	t.Run("no route", func(t *testing.T) {
		routes := &fakeRouteProvider{err: &domain.NoRouteFoundError{}}
		planner := testPlanner(t, geocoder, routes, &fakeCatalog{}, nil)
		_, err := planner.PlanRoute(context.Background(), "Sacramento, CA", "Eureka, CA")
		var noRoute *domain.NoRouteFoundError
		if !errors.As(err, &noRoute) {
			t.Errorf("got err %v, want NoRouteFoundError", err)
		}
	})

	t.Run("empty geometry", func(t *testing.T) {
		routes := &fakeRouteProvider{route: ports.Route{Geometry: "", DistanceMiles: 480}}
		planner := testPlanner(t, geocoder, routes, &fakeCatalog{}, nil)
		_, err := planner.PlanRoute(context.Background(), "Sacramento, CA", "Eureka, CA")
		var noRoute *domain.NoRouteFoundError
		if !errors.As(err, &noRoute) {
			t.Errorf("got err %v, want NoRouteFoundError", err)
		}
	})

	t.Run("no stations near route", func(t *testing.T) {
		routes := &fakeRouteProvider{route: ports.Route{Geometry: testGeometry, DistanceMiles: 480}}
		planner := testPlanner(t, geocoder, routes, &fakeCatalog{}, nil)
		_, err := planner.PlanRoute(context.Background(), "Sacramento, CA", "Eureka, CA")
		if !errors.Is(err, domain.ErrNoStationsNearRoute) {
			t.Errorf("got err %v, want ErrNoStationsNearRoute", err)
		}
	})
}

func TestNewRoutePlannerRejectsBadVehicle(t *testing.T) {
	vehicle := domain.VehicleProfile{RangeMiles: 500, MPG: 0, TankCapacityGal: 50, SafetyMargin: 0.9}
	_, err := NewRoutePlanner(&fakeGeocoder{}, &fakeRouteProvider{}, &fakeCatalog{}, nil, vehicle, 15, time.Hour)
	var invalid *domain.InvalidVehicleError
	if !errors.As(err, &invalid) {
		t.Errorf("got err %v, want InvalidVehicleError", err)
	}
}
