package ports

import (
	"context"
	"time"

	"fuel-route-service/internal/domain"
)

// PlanCache stores completed route plans keyed by the normalized
// (start, end) location pair for a bounded time window. Get-or-compute is
// idempotent: plans are pure functions of their inputs, so a concurrent
// duplicate computation storing the same key is acceptable.
type PlanCache interface {
	GetPlan(ctx context.Context, key string) (*domain.RoutePlan, bool, error)
	SetPlan(ctx context.Context, key string, plan *domain.RoutePlan, ttl time.Duration) error
}

// GeocodeCache stores resolved coordinates per normalized location string.
type GeocodeCache interface {
	GetCoordinates(ctx context.Context, location string) (domain.Coordinates, bool, error)
	SetCoordinates(ctx context.Context, location string, coords domain.Coordinates, ttl time.Duration) error
}
