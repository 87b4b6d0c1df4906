package domain

// FuelStop is one refueling stop in a plan. Stops are created only by the
// planner and are immutable once returned; Gallons and Cost are rounded to
// two decimal places for display consistency.
type FuelStop struct {
	StationID         int64
	OPISID            int64
	Name              string
	Address           string
	City              string
	State             string
	Coordinates       Coordinates
	PricePerGallon    float64
	Gallons           float64
	Cost              float64
	DistanceFromStart float64
}

// RoutePlan is the complete planning result for one request: endpoints,
// route geometry and metrics, and the ordered fuel stops with cost totals.
// A plan is constructed fresh per request and never mutated afterwards; it
// may be cached keyed by the normalized (start, end) pair.
type RoutePlan struct {
	StartLocation    string
	EndLocation      string
	StartCoordinates Coordinates
	EndCoordinates   Coordinates

	// Geometry is the encoded polyline returned by the route provider,
	// kept verbatim for map display.
	Geometry        string
	DistanceMiles   float64
	DurationSeconds float64

	FuelStops        []FuelStop
	TotalFuelCost    float64
	TotalFuelGallons float64
}

// StopCount is the number of refueling stops in the plan.
func (p *RoutePlan) StopCount() int { return len(p.FuelStops) }
