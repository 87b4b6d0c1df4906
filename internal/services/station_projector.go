package services

import (
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
)

// Cap on the number of path vertices distance-walked per station. Accuracy
// is traded for speed on long routes.
const projectorSampleTarget = 100

// ProjectStations maps each station to its nearest path vertex and records
// that vertex's cumulative mileage as the station's distance-from-start.
// The first vertex achieving the minimum wins, so a station equidistant from
// two vertices is assigned the earlier one. Output order is unspecified;
// sorting belongs to the planner.
func ProjectStations(stations []domain.Station, path []geo.PathPoint) []domain.ProjectedStation {
	if len(path) == 0 {
		return nil
	}

	stride := len(path) / projectorSampleTarget
	if stride < 1 {
		stride = 1
	}

	projected := make([]domain.ProjectedStation, 0, len(stations))
	for _, s := range stations {
		best := path[0]
		bestDist := geo.Distance(s.Coordinates, path[0].Coordinates)

		for i := stride; i < len(path); i += stride {
			d := geo.Distance(s.Coordinates, path[i].Coordinates)
			if d < bestDist {
				bestDist = d
				best = path[i]
			}
		}

		projected = append(projected, domain.ProjectedStation{
			Station:           s,
			DistanceFromStart: best.CumulativeMiles,
			DetourMiles:       bestDist,
		})
	}

	return projected
}
