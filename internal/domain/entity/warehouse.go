package entity

// Warehouse representa un almacén físico, raíz de la jerarquía
// warehouse → pallet → bin.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
