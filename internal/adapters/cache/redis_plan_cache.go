package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

const planKeyPrefix = "plan:"

// RedisPlanCache stores completed route plans as JSON values under a TTL.
// Entries expire server-side; a plan is recomputed on the next request
// after expiry.
type RedisPlanCache struct {
	client *redis.Client
}

func NewRedisPlanCache(client *redis.Client) *RedisPlanCache {
	return &RedisPlanCache{client: client}
}

func (c *RedisPlanCache) GetPlan(ctx context.Context, key string) (_ *domain.RoutePlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	raw, err := c.client.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	var plan domain.RoutePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode %q: %w", key, err)
	}
	return &plan, true, nil
}

func (c *RedisPlanCache) SetPlan(ctx context.Context, key string, plan *domain.RoutePlan, ttl time.Duration) error {
	if plan == nil {
		return errors.New("set plan cache: plan is nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("set plan cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, planKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set plan cache: %w", err)
	}
	return nil
}
