package services

import (
	"context"
	"errors"
	"testing"

	"fuel-route-service/internal/domain"
)

// fakeCatalog answers bounding-box queries from an in-memory station list.
type fakeCatalog struct {
	stations []domain.Station
	queries  int
	err      error
}

func (f *fakeCatalog) QueryBoundingBox(_ context.Context, latMin, latMax, lonMin, lonMax float64) ([]domain.Station, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Station
	for _, s := range f.stations {
		if s.Coordinates.Lat >= latMin && s.Coordinates.Lat <= latMax &&
			s.Coordinates.Lon >= lonMin && s.Coordinates.Lon <= lonMax {
			out = append(out, s)
		}
	}
	return out, nil
}

func catalogStation(id int64, lat, lon float64) domain.Station {
	return domain.Station{
		ID:             id,
		Name:           "Station",
		State:          "KS",
		Coordinates:    domain.Coordinates{Lat: lat, Lon: lon},
		PricePerGallon: 3.50,
		IsActive:       true,
	}
}

// straightPath builds an eastward path along a fixed latitude.
func straightPath(lat float64, lonStart, lonStep float64, n int) []domain.Coordinates {
	points := make([]domain.Coordinates, n)
	for i := range points {
		points[i] = domain.Coordinates{Lat: lat, Lon: lonStart + float64(i)*lonStep}
	}
	return points
}

func TestFindStationsNearPath(t *testing.T) {
	path := straightPath(39.0, -98.0, 0.05, 10)
	catalog := &fakeCatalog{stations: []domain.Station{
		catalogStation(1, 39.01, -98.0),  // well inside the radius
		catalogStation(2, 39.05, -97.8),  // a few miles off the path
		catalogStation(3, 45.00, -98.0),  // hundreds of miles north
	}}

	found, err := FindStationsNearPath(context.Background(), catalog, path, 15)
	if err != nil {
		t.Fatalf("FindStationsNearPath: %v", err)
	}

	ids := make(map[int64]bool, len(found))
	for _, s := range found {
		ids[s.ID] = true
	}
	if !ids[1] || !ids[2] {
		t.Errorf("missing nearby stations, got %v", ids)
	}
	if ids[3] {
		t.Error("station 3 is far from the path but was included")
	}
}

func TestFindStationsNearPathRejectsCornerOfBox(t *testing.T) {
	// A station can fall inside the bounding box yet sit farther than the
	// detour limit from the sampled point. It must be filtered by the true
	// distance check.
	path := []domain.Coordinates{{Lat: 39.0, Lon: -98.0}}
	// 10-mile detour: box corner is ~14 miles out diagonally.
	corner := catalogStation(7, 39.0+9.9/69.0, -98.0+9.9/(69.0*0.7771)) // ~13.9 miles away

	catalog := &fakeCatalog{stations: []domain.Station{corner}}

	_, err := FindStationsNearPath(context.Background(), catalog, path, 10)
	if !errors.Is(err, domain.ErrNoStationsNearRoute) {
		t.Fatalf("got err %v, want ErrNoStationsNearRoute", err)
	}
}

func TestFindStationsNearPathDeduplicates(t *testing.T) {
	// Dense path with a tiny step: every sampled point sees the same station.
	path := straightPath(39.0, -98.0, 0.001, 40)
	catalog := &fakeCatalog{stations: []domain.Station{
		catalogStation(1, 39.0, -98.0),
	}}

	found, err := FindStationsNearPath(context.Background(), catalog, path, 15)
	if err != nil {
		t.Fatalf("FindStationsNearPath: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("got %d stations, want 1 after dedupe", len(found))
	}
}

func TestFindStationsNearPathSamplesLongRoutes(t *testing.T) {
	path := straightPath(39.0, -120.0, 0.01, 5000)
	catalog := &fakeCatalog{stations: []domain.Station{
		catalogStation(1, 39.0, -120.0),
	}}

	if _, err := FindStationsNearPath(context.Background(), catalog, path, 15); err != nil {
		t.Fatalf("FindStationsNearPath: %v", err)
	}
	if catalog.queries > 51 {
		t.Errorf("issued %d catalog queries for a 5000-point path, want at most ~50", catalog.queries)
	}
}

func TestFindStationsNearPathErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		catalog := &fakeCatalog{}
		_, err := FindStationsNearPath(context.Background(), catalog, nil, 15)
		if !errors.Is(err, domain.ErrNoStationsNearRoute) {
			t.Errorf("got err %v, want ErrNoStationsNearRoute", err)
		}
	})

	t.Run("no stations anywhere", func(t *testing.T) {
		catalog := &fakeCatalog{}
		path := straightPath(39.0, -98.0, 0.05, 10)
		_, err := FindStationsNearPath(context.Background(), catalog, path, 15)
		if !errors.Is(err, domain.ErrNoStationsNearRoute) {
			t.Errorf("got err %v, want ErrNoStationsNearRoute", err)
		}
	})

	t.Run("catalog failure propagates", func(t *testing.T) {
		catalogErr := errors.New("connection refused")
		catalog := &fakeCatalog{err: catalogErr}
		path := straightPath(39.0, -98.0, 0.05, 10)
		_, err := FindStationsNearPath(context.Background(), catalog, path, 15)
		if !errors.Is(err, catalogErr) {
			t.Errorf("got err %v, want wrapped catalog error", err)
		}
	})

	t.Run("non-positive detour", func(t *testing.T) {
		catalog := &fakeCatalog{}
		path := straightPath(39.0, -98.0, 0.05, 10)
		if _, err := FindStationsNearPath(context.Background(), catalog, path, 0); err == nil {
			t.Error("expected error for zero max detour")
		}
	})
}
