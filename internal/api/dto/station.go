package dto

type StationResponse struct {
	ID             int64   `json:"id"`
	OPISID         int64   `json:"opis_id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	PricePerGallon float64 `json:"price_per_gallon"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
