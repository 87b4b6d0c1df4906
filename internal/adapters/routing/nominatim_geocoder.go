package routing

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/platform/retry"
	"fuel-route-service/internal/ports"
)

// DefaultNominatimURL is the public OpenStreetMap Nominatim instance.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves free-form US location strings using the
// Nominatim search API. Lookups go through an optional TTL cache keyed by
// the normalized location string.
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
	policy    retry.Policy
	cache     ports.GeocodeCache
	cacheTTL  time.Duration
}

// NewNominatimGeocoder builds a geocoder against baseURL (the default public
// instance when empty). A nil cache disables coordinate caching. The public
// instance requires an identifying User-Agent.
func NewNominatimGeocoder(baseURL string, cache ports.GeocodeCache, cacheTTL time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &NominatimGeocoder{
		client:    &http.Client{Timeout: defaultTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "fuel-route-service/1.0",
		policy:    retry.DefaultPolicy(),
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// Nominatim serializes lat/lon as JSON strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, location string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	if g.cache != nil {
		coords, ok, err := g.cache.GetCoordinates(ctx, location)
		if err != nil {
			log.Printf("geocode cache read failed location=%q err=%v", location, err)
		} else if ok {
			return coords, nil
		}
	}

	q := url.Values{}
	q.Set("q", location+", USA")
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []nominatimResult
	header := http.Header{"User-Agent": {g.userAgent}}
	if err := getJSON(ctx, g.client, g.policy, g.baseURL+"/search?"+q.Encode(), header, &results); err != nil {
		return domain.Coordinates{}, &domain.ServiceUnavailableError{
			Service: "nominatim",
			Detail:  "geocoding request failed",
			Err:     err,
		}
	}

	if len(results) == 0 {
		return domain.Coordinates{}, &domain.LocationNotFoundError{Location: location}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat %q: %w", location, results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon %q: %w", location, results[0].Lon, err)
	}

	coords, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", location, err)
	}

	if g.cache != nil {
		if err := g.cache.SetCoordinates(ctx, location, coords, g.cacheTTL); err != nil {
			log.Printf("geocode cache write failed location=%q err=%v", location, err)
		}
	}

	return coords, nil
}
