package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/domain"
)

const geocodeKeyPrefix = "geocode:"

// RedisGeocodeCache stores resolved coordinates per normalized location
// string. Geocodes age out slowly; locations rarely move.
type RedisGeocodeCache struct {
	client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client}
}

func (c *RedisGeocodeCache) GetCoordinates(ctx context.Context, location string) (domain.Coordinates, bool, error) {
	raw, err := c.client.Get(ctx, geocodeKeyPrefix+location).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode %q: %w", location, err)
	}
	return coords, true, nil
}

func (c *RedisGeocodeCache) SetCoordinates(ctx context.Context, location string, coords domain.Coordinates, ttl time.Duration) error {
	raw, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("set geocode cache: encode %q: %w", location, err)
	}

	if err := c.client.Set(ctx, geocodeKeyPrefix+location, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set geocode cache: %w", err)
	}
	return nil
}
