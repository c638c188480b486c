package entity

// Bin representa una caja o contenedor dentro de un pallet. BinNumber es
// generado por el sistema (BIN + secuencia) e inmutable. PalletID nulo =
// bin sin asignar.
type Bin struct {
	ID        int
	BinNumber string
	Name      string
	PalletID  *int
	ImageURL  *string
}

// DisplayName devuelve el nombre visible del bin (nombre o número).
func (b *Bin) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.BinNumber
}
