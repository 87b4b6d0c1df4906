package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs, resolved from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	// External service endpoints; empty means the adapter's public default.
	NominatimURL string
	OSRMURL      string

	VehicleRangeMiles float64
	VehicleMPG        float64
	SafetyMargin      float64
	MaxDetourMiles    float64

	PlanCacheTTL    time.Duration
	GeocodeCacheTTL time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except DATABASE_URL.
func Load() (Config, error) {
	cfg := Config{
		Port:         Get("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),
		NominatimURL: os.Getenv("NOMINATIM_URL"),
		OSRMURL:      os.Getenv("OSRM_URL"),
	}

	if cfg.DatabaseURL == "" {
		return cfg, errors.New("config: DATABASE_URL is required")
	}

	var err error
	if cfg.VehicleRangeMiles, err = getFloat("VEHICLE_RANGE_MILES", 500); err != nil {
		return cfg, err
	}
	if cfg.VehicleMPG, err = getFloat("VEHICLE_MPG", 10); err != nil {
		return cfg, err
	}
	if cfg.SafetyMargin, err = getFloat("SAFETY_MARGIN", 0.9); err != nil {
		return cfg, err
	}
	if cfg.MaxDetourMiles, err = getFloat("MAX_DETOUR_MILES", 15); err != nil {
		return cfg, err
	}

	if cfg.PlanCacheTTL, err = getDuration("PLAN_CACHE_TTL", time.Hour); err != nil {
		return cfg, err
	}
	if cfg.GeocodeCacheTTL, err = getDuration("GEOCODE_CACHE_TTL", 24*time.Hour); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}
