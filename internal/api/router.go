package api

import (
	"net/http"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/domain"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner handlers.RoutePlanner, catalog handlers.StationLister, vehicle domain.VehicleProfile) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Planner: planner, Vehicle: vehicle}
	stationHandler := &handlers.StationHandler{Catalog: catalog}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Plan)
	mux.HandleFunc("/stations", stationHandler.List)

	return loggingMiddleware(requestIDMiddleware(mux))
}
