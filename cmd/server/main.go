package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/catalog"
	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Nominatim, OSRM) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Plans and geocodes are served from Redis when it is reachable; the
	// service still works without it, just slower and chattier upstream.
	var planCache ports.PlanCache
	var geocodeCache ports.GeocodeCache
	if client := openRedis(cfg.RedisAddr); client != nil {
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client)
		geocodeCache = cache.NewRedisGeocodeCache(client)
	}

	vehicle, err := domain.NewVehicleProfile(cfg.VehicleRangeMiles, cfg.VehicleMPG, cfg.SafetyMargin)
	if err != nil {
		log.Fatal(err)
	}

	geocoder := routing.NewNominatimGeocoder(cfg.NominatimURL, geocodeCache, cfg.GeocodeCacheTTL)
	routeProvider := routing.NewOSRMRouteProvider(cfg.OSRMURL)
	stationCatalog := catalog.NewPostgresStationCatalog(sqlDB)

	planner, err := services.NewRoutePlanner(geocoder, routeProvider, stationCatalog,
		planCache, vehicle, cfg.MaxDetourMiles, cfg.PlanCacheTTL)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(planner, stationCatalog, planner.Vehicle())

	// Timeouts are tuned for cold-cache planning (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable addr=%s err=%v (caching disabled)", addr, err)
		client.Close()
		return nil
	}
	return client
}
