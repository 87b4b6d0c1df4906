package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the station database with pool settings sized for the
// bounding-box query fan-out of a single planning request.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify postgres connection: %w", err)
	}

	return db, nil
}
