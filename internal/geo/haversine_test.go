package geo

import (
	"math"
	"testing"

	"fuel-route-service/internal/domain"
)

func TestDistanceCoincidentPointsIsZero(t *testing.T) {
	points := []domain.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 34.0522, Lon: -118.2437},
		{Lat: -45.5, Lon: 170.2},
	}

	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%+v, %+v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}
	b := domain.Coordinates{Lat: 40.7128, Lon: -74.0060}

	ab := Distance(a, b)
	ba := Distance(b, a)

	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("Distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Los Angeles to New York, great-circle distance is about 2445 miles.
	la := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}
	ny := domain.Coordinates{Lat: 40.7128, Lon: -74.0060}

	d := Distance(la, ny)
	if d < 2435 || d > 2455 {
		t.Fatalf("Distance(LA, NY) = %v, want ~2445", d)
	}
}

func TestBearingRange(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}

	cases := []struct {
		name string
		b    domain.Coordinates
		want float64
	}{
		{"due north", domain.Coordinates{Lat: 1, Lon: 0}, 0},
		{"due east", domain.Coordinates{Lat: 0, Lon: 1}, 90},
		{"due south", domain.Coordinates{Lat: -1, Lon: 0}, 180},
		{"due west", domain.Coordinates{Lat: 0, Lon: -1}, 270},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Bearing(a, tc.b)
			if math.Abs(got-tc.want) > 0.01 {
				t.Fatalf("Bearing = %v, want %v", got, tc.want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("Bearing %v outside [0, 360)", got)
			}
		})
	}
}
