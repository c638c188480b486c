package dto

import "github.com/shopspring/decimal"

// CreateSkuRequest entrada para crear un SKU. El número se genera.
type CreateSkuRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	ImageURL    *string          `json:"image_url"`
}

// UpdateSkuRequest entrada para actualizar un SKU (parcial).
// SkuNumber es inmutable y no aparece aquí. ImageURL con cadena vacía
// quita la imagen; nulo la deja como está.
type UpdateSkuRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
}

// SkuResponse salida de un SKU.
type SkuResponse struct {
	ID          int              `json:"id"`
	SkuNumber   string           `json:"sku_number"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
}

// SkuLocationResponse ubicación de un SKU: bin que lo contiene, cantidad y
// cadena de pertenencia (pallet y almacén si están asignados).
type SkuLocationResponse struct {
	BinID     int                `json:"bin_id"`
	BinNumber string             `json:"bin_number"`
	BinName   string             `json:"bin_name"`
	Quantity  int                `json:"quantity"`
	Pallet    *PalletResponse    `json:"pallet,omitempty"`
	Warehouse *WarehouseResponse `json:"warehouse,omitempty"`
}

// SkuWithLocationsResponse SKU con todas sus ubicaciones.
type SkuWithLocationsResponse struct {
	SkuResponse
	Locations []SkuLocationResponse `json:"locations"`
}

// ImportSkuRow fila ya parseada del CSV de importación de SKUs.
type ImportSkuRow struct {
	Name        string
	Description string
}

// ImportSkusResult resumen de una importación masiva de SKUs.
type ImportSkusResult struct {
	Imported int           `json:"imported"`
	Total    int           `json:"total"`
	Errors   []string      `json:"errors,omitempty"`
	Skus     []SkuResponse `json:"skus"`
}
