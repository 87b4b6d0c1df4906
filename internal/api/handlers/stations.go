package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
)

// StationLister is the slice of the station catalog the handler needs.
type StationLister interface {
	ListByState(ctx context.Context, state string, limit int) ([]domain.Station, error)
}

// StationHandler exposes read-only station catalog endpoints.
type StationHandler struct {
	Catalog StationLister
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		writeError(w, r, http.StatusBadRequest, "state query parameter is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 1000 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 1000")
			return
		}
	}

	stations, err := h.Catalog.ListByState(r.Context(), state, limit)
	if err != nil {
		var invalid *domain.InvalidLocationError
		if errors.As(err, &invalid) {
			writeError(w, r, http.StatusBadRequest, invalid.Error())
			return
		}
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			ID:             s.ID,
			OPISID:         s.OPISID,
			Name:           s.Name,
			Address:        s.Address,
			City:           s.City,
			State:          s.State,
			Lat:            s.Coordinates.Lat,
			Lon:            s.Coordinates.Lon,
			PricePerGallon: s.PricePerGallon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
