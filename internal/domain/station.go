package domain

// Station is a fuel station record from the catalog. Stations are read-only
// inputs to the optimizer; a planning run ranks and consumes them but never
// mutates or persists them.
type Station struct {
	ID             int64
	OPISID         int64
	Name           string
	Address        string
	City           string
	State          string
	Coordinates    Coordinates
	PricePerGallon float64
	IsActive       bool
}

// ProjectedStation is a Station positioned along a route: DistanceFromStart
// is the cumulative mileage of its nearest path vertex, DetourMiles the
// great-circle distance from the station to that vertex.
type ProjectedStation struct {
	Station
	DistanceFromStart float64
	DetourMiles       float64
}
