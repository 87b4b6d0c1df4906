package dto

type RouteRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type FuelStopResponse struct {
	StationID         int64               `json:"station_id"`
	OPISID            int64               `json:"opis_id"`
	Name              string              `json:"name"`
	Address           string              `json:"address"`
	City              string              `json:"city"`
	State             string              `json:"state"`
	Coordinates       CoordinatesResponse `json:"coordinates"`
	PricePerGallon    float64             `json:"price_per_gallon"`
	Gallons           float64             `json:"gallons"`
	Cost              float64             `json:"cost"`
	DistanceFromStart float64             `json:"distance_from_start_miles"`
}

type PlanSummaryResponse struct {
	TotalDistanceMiles float64 `json:"total_distance_miles"`
	TotalFuelCost      float64 `json:"total_fuel_cost"`
	TotalFuelGallons   float64 `json:"total_fuel_gallons"`
	NumberOfStops      int     `json:"number_of_stops"`
	VehicleMPG         float64 `json:"vehicle_mpg"`
	VehicleRangeMiles  float64 `json:"vehicle_range_miles"`
}

type RoutePlanResponse struct {
	StartLocation    string              `json:"start_location"`
	EndLocation      string              `json:"end_location"`
	StartCoordinates CoordinatesResponse `json:"start_coordinates"`
	EndCoordinates   CoordinatesResponse `json:"end_coordinates"`
	Geometry         string              `json:"geometry"`
	DistanceMiles    float64             `json:"distance_miles"`
	DurationSeconds  float64             `json:"duration_seconds"`
	FuelStops        []FuelStopResponse  `json:"fuel_stops"`
	Summary          PlanSummaryResponse `json:"summary"`
}
