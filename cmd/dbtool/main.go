// Command dbtool initializes the fuel station schema and imports OPIS price
// exports into Postgres.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"fuel-route-service/internal/adapters/catalog"
	"fuel-route-service/internal/platform/db"
)

func main() {
	csvPath := flag.String("csv", "", "OPIS station export to import")
	reset := flag.Bool("reset", false, "delete existing stations before importing")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	log.Println("Initializing database schema...")
	if err := catalog.InitSchema(sqlDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	ctx := context.Background()

	if *reset {
		log.Println("Removing existing stations...")
		if err := catalog.ResetStations(ctx, sqlDB); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
	}

	if *csvPath == "" {
		return
	}

	log.Printf("Importing stations from %s...", *csvPath)
	start := time.Now()
	stats, err := catalog.ImportCSV(ctx, sqlDB, *csvPath)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Import complete: imported=%d with_coords=%d skipped=%d dur=%s",
		stats.Imported, stats.WithCoords, stats.Skipped, time.Since(start).Round(time.Millisecond))
}
