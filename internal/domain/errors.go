package domain

import (
	"errors"
	"fmt"
)

// ErrNoStationsNearRoute is reported when not a single active station falls
// within the detour radius of the route. The caller decides whether that is
// fatal for the request.
var ErrNoStationsNearRoute = errors.New("no fuel stations found near route")

// InvalidCoordinatesError rejects latitude/longitude pairs outside the valid
// ranges before any computation runs.
type InvalidCoordinatesError struct {
	Lat    float64
	Lon    float64
	Reason string
}

func (e *InvalidCoordinatesError) Error() string {
	return fmt.Sprintf("invalid coordinates (%v, %v): %s", e.Lat, e.Lon, e.Reason)
}

// InvalidLocationError rejects malformed location strings.
type InvalidLocationError struct {
	Location string
	Reason   string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location %q: %s", e.Location, e.Reason)
}

// InvalidVehicleError rejects inconsistent or non-positive vehicle parameters.
type InvalidVehicleError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidVehicleError) Error() string {
	return fmt.Sprintf("invalid vehicle parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// MalformedPathEncodingError indicates a truncated or otherwise undecodable
// polyline. Offset is the byte position where decoding failed.
type MalformedPathEncodingError struct {
	Offset int
}

func (e *MalformedPathEncodingError) Error() string {
	return fmt.Sprintf("malformed path encoding at byte %d", e.Offset)
}

// LocationNotFoundError means the geocoder had no match for a location string.
type LocationNotFoundError struct {
	Location string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("could not find location: %s", e.Location)
}

// NoRouteFoundError means the route provider could not connect the endpoints.
type NoRouteFoundError struct {
	Start Coordinates
	End   Coordinates
}

func (e *NoRouteFoundError) Error() string {
	return fmt.Sprintf("no route found from (%v, %v) to (%v, %v)",
		e.Start.Lat, e.Start.Lon, e.End.Lat, e.End.Lon)
}

// InsufficientRangeError means the route cannot be completed with the given
// vehicle and station set. It carries the distances needed to diagnose the
// failure without re-running the plan.
type InsufficientRangeError struct {
	RouteDistanceMiles float64
	VehicleRangeMiles  float64
}

func (e *InsufficientRangeError) Error() string {
	return fmt.Sprintf("vehicle range (%.1f miles) is insufficient for route distance (%.1f miles) with available fuel stations",
		e.VehicleRangeMiles, e.RouteDistanceMiles)
}

// ServiceUnavailableError wraps transport, timeout, and server-side failures
// from an external collaborator after the retry budget is exhausted.
type ServiceUnavailableError struct {
	Service string
	Detail  string
	Err     error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service %q is currently unavailable: %s", e.Service, e.Detail)
	}
	return fmt.Sprintf("service %q is currently unavailable", e.Service)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }
