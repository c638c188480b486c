package dto

// CreateWarehouseRequest entrada para crear un almacén.
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required"`
}

// UpdateWarehouseRequest entrada para actualizar un almacén (parcial:
// los campos nulos no se tocan).
type UpdateWarehouseRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseWithPalletsResponse almacén con sus pallets anidados.
type WarehouseWithPalletsResponse struct {
	WarehouseResponse
	Pallets []PalletResponse `json:"pallets"`
}
