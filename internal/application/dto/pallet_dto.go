package dto

// CreatePalletRequest entrada para crear un pallet. El número se genera;
// si Name viene vacío, toma el número generado.
type CreatePalletRequest struct {
	Name         string  `json:"name"`
	WarehouseID  *int    `json:"warehouse_id"`
	LocationCode *string `json:"location_code" validate:"omitempty,max=6"`
}

// UpdatePalletRequest entrada para actualizar un pallet (parcial).
// PalletNumber es inmutable y no aparece aquí.
type UpdatePalletRequest struct {
	Name         *string `json:"name"`
	WarehouseID  *int    `json:"warehouse_id"`
	LocationCode *string `json:"location_code" validate:"omitempty,max=6"`
}

// PalletResponse salida de un pallet.
type PalletResponse struct {
	ID           int     `json:"id"`
	PalletNumber string  `json:"pallet_number"`
	Name         string  `json:"name"`
	WarehouseID  *int    `json:"warehouse_id"`
	LocationCode *string `json:"location_code"`
}

// PalletWithBinsResponse pallet con sus bins y el almacén resuelto.
type PalletWithBinsResponse struct {
	PalletResponse
	Bins      []BinResponse      `json:"bins"`
	Warehouse *WarehouseResponse `json:"warehouse,omitempty"`
}
