package domain

import "math"

// Immutable geographic coordinates in decimal degrees (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates validates latitude and longitude before constructing a pair.
// Out-of-range or non-finite values are rejected, never clamped.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Coordinates{}, &InvalidCoordinatesError{Lat: lat, Lon: lon, Reason: "latitude must be finite"}
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinates{}, &InvalidCoordinatesError{Lat: lat, Lon: lon, Reason: "longitude must be finite"}
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, &InvalidCoordinatesError{Lat: lat, Lon: lon, Reason: "latitude must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, &InvalidCoordinatesError{Lat: lat, Lon: lon, Reason: "longitude must be between -180 and 180"}
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// Valid reports whether the pair would pass NewCoordinates.
func (c Coordinates) Valid() bool {
	_, err := NewCoordinates(c.Lat, c.Lon)
	return err == nil
}
