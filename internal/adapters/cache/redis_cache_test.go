package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/domain"
)

func testClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	_, client := testClient(t)
	c := NewRedisPlanCache(client)
	ctx := context.Background()

	plan := &domain.RoutePlan{
		StartLocation: "Sacramento, CA",
		EndLocation:   "Los Angeles, CA",
		DistanceMiles: 384.32,
		FuelStops: []domain.FuelStop{
			{StationID: 7, Name: "Flying J", Gallons: 30, Cost: 90, DistanceFromStart: 300},
		},
		TotalFuelCost:    90,
		TotalFuelGallons: 30,
	}

	if _, ok, err := c.GetPlan(ctx, "Sacramento, CA|Los Angeles, CA"); err != nil || ok {
		t.Fatalf("empty cache get = (ok=%v, err=%v), want miss", ok, err)
	}

	if err := c.SetPlan(ctx, "Sacramento, CA|Los Angeles, CA", plan, time.Hour); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}

	got, ok, err := c.GetPlan(ctx, "Sacramento, CA|Los Angeles, CA")
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.StartLocation != plan.StartLocation || got.DistanceMiles != plan.DistanceMiles {
		t.Errorf("got plan %+v", got)
	}
	if len(got.FuelStops) != 1 || got.FuelStops[0].StationID != 7 {
		t.Errorf("fuel stops not preserved: %+v", got.FuelStops)
	}
}

func TestRedisPlanCacheExpires(t *testing.T) {
	mr, client := testClient(t)
	c := NewRedisPlanCache(client)
	ctx := context.Background()

	if err := c.SetPlan(ctx, "A|B", &domain.RoutePlan{StartLocation: "A"}, time.Hour); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, ok, err := c.GetPlan(ctx, "A|B"); err != nil || ok {
		t.Errorf("get after expiry = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestRedisPlanCacheRejectsNilPlan(t *testing.T) {
	_, client := testClient(t)
	c := NewRedisPlanCache(client)

	if err := c.SetPlan(context.Background(), "A|B", nil, time.Hour); err == nil {
		t.Error("expected error for nil plan")
	}
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	mr, client := testClient(t)
	c := NewRedisGeocodeCache(client)
	ctx := context.Background()

	coords := domain.Coordinates{Lat: 38.5816, Lon: -121.4944}

	if _, ok, err := c.GetCoordinates(ctx, "Sacramento, CA"); err != nil || ok {
		t.Fatalf("empty cache get = (ok=%v, err=%v), want miss", ok, err)
	}

	if err := c.SetCoordinates(ctx, "Sacramento, CA", coords, 24*time.Hour); err != nil {
		t.Fatalf("SetCoordinates: %v", err)
	}

	got, ok, err := c.GetCoordinates(ctx, "Sacramento, CA")
	if err != nil {
		t.Fatalf("GetCoordinates: %v", err)
	}
	if !ok || got != coords {
		t.Errorf("got (%+v, %v), want (%+v, true)", got, ok, coords)
	}

	mr.FastForward(25 * time.Hour)
	if _, ok, _ := c.GetCoordinates(ctx, "Sacramento, CA"); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestRedisCachesKeyIsolation(t *testing.T) {
	// A plan and a geocode under the same logical key must not collide.
	_, client := testClient(t)
	plans := NewRedisPlanCache(client)
	geocodes := NewRedisGeocodeCache(client)
	ctx := context.Background()

	if err := geocodes.SetCoordinates(ctx, "K", domain.Coordinates{Lat: 1, Lon: 2}, time.Hour); err != nil {
		t.Fatalf("SetCoordinates: %v", err)
	}
	if _, ok, err := plans.GetPlan(ctx, "K"); err != nil || ok {
		t.Errorf("plan get under geocode key = (ok=%v, err=%v), want miss", ok, err)
	}
}
