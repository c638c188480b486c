package entity

import "time"

// Acciones registradas en el log de actividad.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Tipos de entidad sobre los que se registra actividad.
const (
	EntityTypeWarehouse = "warehouse"
	EntityTypePallet    = "pallet"
	EntityTypeBin       = "bin"
	EntityTypeSku       = "sku"
	EntityTypeInventory = "inventory" // movimientos bin–SKU
)

// ActivityEntry es una entrada del log de actividad: registro append-only de
// cada mutación con una descripción legible del cambio. Nunca se modifica ni
// se borra.
type ActivityEntry struct {
	ID          int
	Action      string
	EntityType  string
	EntityID    int
	EntityName  string
	Description string
	Timestamp   time.Time
}
