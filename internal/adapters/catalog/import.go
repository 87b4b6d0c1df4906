package catalog

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"fuel-route-service/internal/domain"
)

// Column headers of the OPIS retail price export. Latitude/Longitude are
// optional enrichment columns; the raw export ships without them.
const (
	colOPISID = "OPIS Truckstop ID"
	colName   = "Truckstop Name"
	colAddr   = "Address"
	colCity   = "City"
	colState  = "State"
	colRackID = "Rack ID"
	colPrice  = "Retail Price"
	colLat    = "Latitude"
	colLon    = "Longitude"
)

// ImportStats summarizes one CSV import run.
type ImportStats struct {
	Imported   int
	WithCoords int
	Skipped    int
}

// ImportCSV loads the OPIS station export into the fuel_stations table.
// Rows without coordinate columns are stored with NULL coordinates, which
// keeps them out of bounding-box queries until enriched. Malformed rows are
// logged and skipped.
func ImportCSV(ctx context.Context, db *sql.DB, csvPath string) (ImportStats, error) {
	var stats ImportStats

	if db == nil {
		return stats, errors.New("import stations: DB is nil")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return stats, fmt.Errorf("import stations: open %q: %w", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("import stations: read header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return stats, fmt.Errorf("import stations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("import stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO fuel_stations (
		opis_id,
		name,
		address,
		city,
		state,
		rack_id,
		retail_price,
		lat,
		lon
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`)
	if err != nil {
		return stats, fmt.Errorf("import stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("import stations: read line %d: %w", line, err)
		}

		row, err := parseRow(record, cols)
		if err != nil {
			log.Printf("skipping station line=%d err=%v", line, err)
			stats.Skipped++
			continue
		}

		if _, err := stmt.ExecContext(ctx, row.opisID, row.name, row.address,
			row.city, row.state, row.rackID, row.price, row.lat, row.lon); err != nil {
			return stats, fmt.Errorf("import stations: insert opis_id=%d line=%d: %w", row.opisID, line, err)
		}
		stats.Imported++
		if row.lat.Valid {
			stats.WithCoords++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("import stations: commit tx: %w", err)
	}

	return stats, nil
}

// ResetStations removes all imported stations before a fresh import.
func ResetStations(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("reset stations: DB is nil")
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM fuel_stations;`); err != nil {
		return fmt.Errorf("reset stations: %w", err)
	}
	return nil
}

type stationRow struct {
	opisID  int64
	name    string
	address string
	city    string
	state   string
	rackID  sql.NullInt64
	price   float64
	lat     sql.NullFloat64
	lon     sql.NullFloat64
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colOPISID, colName, colCity, colState, colPrice} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int) (stationRow, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	opisID, err := strconv.ParseInt(field(colOPISID), 10, 64)
	if err != nil {
		return stationRow{}, fmt.Errorf("parse OPIS id %q: %w", field(colOPISID), err)
	}

	price, err := strconv.ParseFloat(field(colPrice), 64)
	if err != nil {
		return stationRow{}, fmt.Errorf("parse retail price %q: %w", field(colPrice), err)
	}
	if price <= 0 {
		return stationRow{}, fmt.Errorf("non-positive retail price %v", price)
	}

	row := stationRow{
		opisID:  opisID,
		name:    field(colName),
		address: field(colAddr),
		city:    field(colCity),
		state:   strings.ToUpper(field(colState)),
		price:   price,
	}

	if row.name == "" || row.city == "" {
		return stationRow{}, errors.New("empty name or city")
	}
	if !domain.ValidStateCode(row.state) {
		return stationRow{}, fmt.Errorf("unknown state code %q", row.state)
	}

	if raw := field(colRackID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return stationRow{}, fmt.Errorf("parse rack id %q: %w", raw, err)
		}
		row.rackID = sql.NullInt64{Int64: id, Valid: true}
	}

	rawLat, rawLon := field(colLat), field(colLon)
	if rawLat != "" && rawLon != "" {
		lat, err := strconv.ParseFloat(rawLat, 64)
		if err != nil {
			return stationRow{}, fmt.Errorf("parse latitude %q: %w", rawLat, err)
		}
		lon, err := strconv.ParseFloat(rawLon, 64)
		if err != nil {
			return stationRow{}, fmt.Errorf("parse longitude %q: %w", rawLon, err)
		}
		if _, err := domain.NewCoordinates(lat, lon); err != nil {
			return stationRow{}, err
		}
		row.lat = sql.NullFloat64{Float64: lat, Valid: true}
		row.lon = sql.NullFloat64{Float64: lon, Valid: true}
	}

	return row, nil
}
