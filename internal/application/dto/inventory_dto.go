package dto

// AddSkuToBinRequest entrada para agregar unidades de un SKU a un bin.
// Si el SKU ya está en el bin, la cantidad se acumula sobre la existente.
type AddSkuToBinRequest struct {
	SkuID    int `json:"sku_id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateBinSkuQuantityRequest entrada para fijar la cantidad absoluta de un
// SKU en un bin (no es un delta).
type UpdateBinSkuQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// BinSkuResponse fila del join bin–SKU.
type BinSkuResponse struct {
	ID       int `json:"id"`
	BinID    int `json:"bin_id"`
	SkuID    int `json:"sku_id"`
	Quantity int `json:"quantity"`
}

// BinSkuWithSkuResponse fila del join con el SKU resuelto.
type BinSkuWithSkuResponse struct {
	BinSkuResponse
	Sku SkuResponse `json:"sku"`
}
