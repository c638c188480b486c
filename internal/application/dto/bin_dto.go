package dto

// CreateBinRequest entrada para crear un bin. El número se genera;
// si Name viene vacío, toma el número generado.
type CreateBinRequest struct {
	Name     string  `json:"name"`
	PalletID *int    `json:"pallet_id"`
	ImageURL *string `json:"image_url"`
}

// UpdateBinRequest entrada para actualizar un bin (parcial). ImageURL con
// cadena vacía quita la imagen; nulo la deja como está.
type UpdateBinRequest struct {
	Name     *string `json:"name"`
	PalletID *int    `json:"pallet_id"`
	ImageURL *string `json:"image_url"`
}

// BinResponse salida de un bin.
type BinResponse struct {
	ID        int     `json:"id"`
	BinNumber string  `json:"bin_number"`
	Name      string  `json:"name"`
	PalletID  *int    `json:"pallet_id"`
	ImageURL  *string `json:"image_url"`
}

// BinListItemResponse bin del listado general con el conteo de SKUs.
type BinListItemResponse struct {
	BinResponse
	ItemCount int `json:"item_count"`
}

// BinWithSkusResponse bin con su contenido (SKUs y cantidades) y el pallet
// resuelto.
type BinWithSkusResponse struct {
	BinResponse
	BinSkus []BinSkuWithSkuResponse `json:"bin_skus"`
	Pallet  *PalletResponse         `json:"pallet,omitempty"`
}
