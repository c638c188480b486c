package entity

import "github.com/shopspring/decimal"

// Sku representa un producto identificable del inventario. SkuNumber es
// generado por el sistema (SKU + secuencia) e inmutable; Name es obligatorio.
type Sku struct {
	ID          int
	SkuNumber   string
	Name        string
	Description *string
	Price       *decimal.Decimal // precio unitario, nulo si no se ha definido
	ImageURL    *string
}
