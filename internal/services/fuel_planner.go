package services

import (
	"math"
	"sort"

	"fuel-route-service/internal/domain"
)

// Hard cap on planning iterations. Valid inputs converge in far fewer steps;
// the bound guarantees termination on pathological station data.
const maxPlannerIterations = 1000

// FuelPlan is the planner's result: ordered stops (ascending
// distance-from-start by construction) plus cost and volume totals, all
// rounded to two decimal places.
type FuelPlan struct {
	Stops        []domain.FuelStop
	TotalCost    float64
	TotalGallons float64
}

// PlanFuelStops selects a minimum-cost ordered sequence of refueling stops
// that never lets the vehicle run dry.
//
// At each step the planner refuels at the cheapest station reachable within
// the safety-margin-reduced range, widening to the full range only when that
// window is empty. Price ties break toward the nearer station. Each station
// is usable at most once per plan. The algorithm is greedy: it minimizes
// cost per stop, not globally across all stop sequences.
func PlanFuelStops(
	stations []domain.ProjectedStation,
	totalDistanceMiles float64,
	vehicle domain.VehicleProfile,
) (*FuelPlan, error) {
	// The working set is owned by this call: sorted ascending by
	// distance-from-start and consumed as stations are used.
	remaining := make([]domain.ProjectedStation, len(stations))
	copy(remaining, stations)
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].DistanceFromStart < remaining[j].DistanceFromStart
	})

	currentDistance := 0.0
	currentFuel := vehicle.TankCapacityGal
	totalCost := 0.0
	totalGallons := 0.0
	stops := []domain.FuelStop{}

	for iteration := 0; currentDistance < totalDistanceMiles; iteration++ {
		if iteration >= maxPlannerIterations {
			return nil, &domain.InsufficientRangeError{
				RouteDistanceMiles: totalDistanceMiles,
				VehicleRangeMiles:  vehicle.RangeMiles,
			}
		}

		if currentFuel*vehicle.MPG >= totalDistanceMiles-currentDistance {
			// Destination reachable on the fuel in the tank.
			break
		}

		idx := selectStation(remaining, currentDistance, vehicle.EffectiveRangeMiles())
		if idx < 0 {
			// Safety margin is advisory: widen to the full range before
			// giving up.
			idx = selectStation(remaining, currentDistance, vehicle.RangeMiles)
		}
		if idx < 0 {
			return nil, &domain.InsufficientRangeError{
				RouteDistanceMiles: totalDistanceMiles,
				VehicleRangeMiles:  vehicle.RangeMiles,
			}
		}

		best := remaining[idx]

		distanceToStation := best.DistanceFromStart - currentDistance
		currentFuel -= distanceToStation / vehicle.MPG
		if currentFuel < 0 {
			// Unreachable given the range checks above; fail loudly rather
			// than clamping.
			return nil, &domain.InsufficientRangeError{
				RouteDistanceMiles: totalDistanceMiles,
				VehicleRangeMiles:  vehicle.RangeMiles,
			}
		}

		gallons := vehicle.TankCapacityGal - currentFuel
		cost := gallons * best.PricePerGallon

		stops = append(stops, domain.FuelStop{
			StationID:         best.ID,
			OPISID:            best.OPISID,
			Name:              best.Name,
			Address:           best.Address,
			City:              best.City,
			State:             best.State,
			Coordinates:       best.Coordinates,
			PricePerGallon:    best.PricePerGallon,
			Gallons:           round2(gallons),
			Cost:              round2(cost),
			DistanceFromStart: round2(best.DistanceFromStart),
		})

		totalCost += cost
		totalGallons += gallons
		currentFuel = vehicle.TankCapacityGal
		currentDistance = best.DistanceFromStart
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return &FuelPlan{
		Stops:        stops,
		TotalCost:    round2(totalCost),
		TotalGallons: round2(totalGallons),
	}, nil
}

// selectStation returns the index of the cheapest station strictly ahead of
// currentDistance and within windowMiles of it, or -1 if none qualifies.
// Price ties break toward the nearer station; remaining is sorted by
// distance, so the first qualifying minimum wins.
func selectStation(remaining []domain.ProjectedStation, currentDistance, windowMiles float64) int {
	best := -1
	for i, sp := range remaining {
		if sp.DistanceFromStart <= currentDistance {
			continue
		}
		if sp.DistanceFromStart > currentDistance+windowMiles {
			// Sorted input: everything past here is farther still.
			break
		}
		if best < 0 || sp.PricePerGallon < remaining[best].PricePerGallon {
			best = i
		}
	}
	return best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
