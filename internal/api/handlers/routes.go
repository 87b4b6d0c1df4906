package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
)

// RoutePlanner is the slice of the planning service the handler needs.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, start, end string) (*domain.RoutePlan, error)
}

type RouteHandler struct {
	Planner RoutePlanner
	Vehicle domain.VehicleProfile
}

// Plan computes a route with optimal fuel stops between two locations.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	plan, err := h.Planner.PlanRoute(r.Context(), req.StartLocation, req.EndLocation)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.toRoutePlanResponse(plan))
}

// writePlanError maps domain failures onto HTTP statuses: bad input is 400,
// an unresolvable location or unconnectable endpoints is 404, an
// unplannable route is 422, and an unreachable upstream is 503. Anything
// else is an internal error.
func writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidLocation *domain.InvalidLocationError
		invalidCoords   *domain.InvalidCoordinatesError
		notFound        *domain.LocationNotFoundError
		noRoute         *domain.NoRouteFoundError
		insufficient    *domain.InsufficientRangeError
		unavailable     *domain.ServiceUnavailableError
	)

	switch {
	case errors.As(err, &invalidLocation), errors.As(err, &invalidCoords):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusNotFound, notFound.Error())
	case errors.As(err, &noRoute):
		writeError(w, r, http.StatusNotFound, noRoute.Error())
	case errors.Is(err, domain.ErrNoStationsNearRoute):
		writeError(w, r, http.StatusUnprocessableEntity, domain.ErrNoStationsNearRoute.Error())
	case errors.As(err, &insufficient):
		writeError(w, r, http.StatusUnprocessableEntity, insufficient.Error())
	case errors.As(err, &unavailable):
		writeError(w, r, http.StatusServiceUnavailable, unavailable.Error())
	default:
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func (h *RouteHandler) toRoutePlanResponse(plan *domain.RoutePlan) dto.RoutePlanResponse {
	stops := make([]dto.FuelStopResponse, 0, len(plan.FuelStops))
	for _, s := range plan.FuelStops {
		stops = append(stops, dto.FuelStopResponse{
			StationID: s.StationID,
			OPISID:    s.OPISID,
			Name:      s.Name,
			Address:   s.Address,
			City:      s.City,
			State:     s.State,
			Coordinates: dto.CoordinatesResponse{
				Lat: s.Coordinates.Lat,
				Lon: s.Coordinates.Lon,
			},
			PricePerGallon:    s.PricePerGallon,
			Gallons:           s.Gallons,
			Cost:              s.Cost,
			DistanceFromStart: s.DistanceFromStart,
		})
	}

	return dto.RoutePlanResponse{
		StartLocation:    plan.StartLocation,
		EndLocation:      plan.EndLocation,
		StartCoordinates: dto.CoordinatesResponse{Lat: plan.StartCoordinates.Lat, Lon: plan.StartCoordinates.Lon},
		EndCoordinates:   dto.CoordinatesResponse{Lat: plan.EndCoordinates.Lat, Lon: plan.EndCoordinates.Lon},
		Geometry:         plan.Geometry,
		DistanceMiles:    plan.DistanceMiles,
		DurationSeconds:  plan.DurationSeconds,
		FuelStops:        stops,
		Summary: dto.PlanSummaryResponse{
			TotalDistanceMiles: plan.DistanceMiles,
			TotalFuelCost:      plan.TotalFuelCost,
			TotalFuelGallons:   plan.TotalFuelGallons,
			NumberOfStops:      plan.StopCount(),
			VehicleMPG:         h.Vehicle.MPG,
			VehicleRangeMiles:  h.Vehicle.RangeMiles,
		},
	}
}
