package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the StationCatalog port.
type PostgresStationCatalog struct{ DB *sql.DB }

func NewPostgresStationCatalog(db *sql.DB) *PostgresStationCatalog {
	return &PostgresStationCatalog{DB: db}
}

// QueryBoundingBox returns the active stations inside the given lat/lon box.
// Stations without coordinates never satisfy the BETWEEN filters, so they
// are excluded without an explicit NULL check.
func (p *PostgresStationCatalog) QueryBoundingBox(
	ctx context.Context,
	latMin, latMax, lonMin, lonMax float64,
) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "catalog.QueryBoundingBox")(&err)

	if p.DB == nil {
		return nil, errors.New("station catalog: DB is nil")
	}

	query := `
	SELECT
		id,
		opis_id,
		name,
		address,
		city,
		state,
		lat,
		lon,
		retail_price
	FROM fuel_stations
	WHERE is_active
	  AND lat BETWEEN $1 AND $2
	  AND lon BETWEEN $3 AND $4;
	`
	rows, err := p.DB.QueryContext(ctx, query, latMin, latMax, lonMin, lonMax)
	if err != nil {
		return nil, fmt.Errorf("query bounding box: query fuel_stations table: %w", err)
	}
	defer rows.Close()

	return scanStations(rows)
}

// ListByState returns active stations in a state ordered by price, limited
// to at most limit rows.
func (p *PostgresStationCatalog) ListByState(
	ctx context.Context,
	state string,
	limit int,
) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "catalog.ListByState")(&err)

	if p.DB == nil {
		return nil, errors.New("station catalog: DB is nil")
	}

	state = strings.ToUpper(strings.TrimSpace(state))
	if !domain.ValidStateCode(state) {
		return nil, &domain.InvalidLocationError{Location: state, Reason: "not a US state code"}
	}
	if limit <= 0 {
		limit = 100
	}

	query := `
	SELECT
		id,
		opis_id,
		name,
		address,
		city,
		state,
		lat,
		lon,
		retail_price
	FROM fuel_stations
	WHERE is_active
	  AND state = $1
	ORDER BY retail_price, id
	LIMIT $2;
	`
	rows, err := p.DB.QueryContext(ctx, query, state, limit)
	if err != nil {
		return nil, fmt.Errorf("list by state: query fuel_stations table: %w", err)
	}
	defer rows.Close()

	return scanStations(rows)
}

func scanStations(rows *sql.Rows) ([]domain.Station, error) {
	stations := make([]domain.Station, 0, 64)
	for rows.Next() {
		var s domain.Station
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.OPISID, &s.Name, &s.Address, &s.City, &s.State,
			&lat, &lon, &s.PricePerGallon); err != nil {
			return nil, fmt.Errorf("scan station row: %w", err)
		}
		s.Coordinates = domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		s.IsActive = true
		stations = append(stations, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("station row iteration: %w", err)
	}

	return stations, nil
}
