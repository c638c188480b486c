package dto

// StatsResponse conteos globales por tipo de entidad, calculados en fresco
// en cada llamada.
type StatsResponse struct {
	Warehouses int `json:"warehouses"`
	Pallets    int `json:"pallets"`
	Bins       int `json:"bins"`
	Skus       int `json:"skus"`
}
