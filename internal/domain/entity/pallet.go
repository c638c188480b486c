package entity

// Pallet representa un pallet dentro de un almacén. PalletNumber es generado
// por el sistema (PLT + secuencia) e inmutable; Name es editable y por defecto
// toma el valor del número. WarehouseID nulo = pallet sin asignar.
type Pallet struct {
	ID           int
	PalletNumber string
	Name         string
	WarehouseID  *int
	LocationCode *string // código de ubicación física, máx. 6 caracteres
}

// DisplayName devuelve el nombre visible del pallet (nombre o número).
func (p *Pallet) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.PalletNumber
}
