package catalog

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the fuel station schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS fuel_stations (
		id BIGSERIAL PRIMARY KEY,
		opis_id BIGINT NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		rack_id BIGINT,
		retail_price DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createBoxIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_fuel_stations_lat_lon
	ON fuel_stations(lat, lon)
	WHERE is_active;
	`

	createStateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_fuel_stations_state_price
	ON fuel_stations(state, retail_price);
	`

	statements := []string{
		createStationsQuery,
		createBoxIndexQuery,
		createStateIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
