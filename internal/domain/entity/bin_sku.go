package entity

// BinSku es la fila de hecho "este bin contiene esta cantidad de este SKU".
// Existe a lo sumo una fila por par (BinID, SkuID); agregar un SKU que ya
// está en el bin acumula sobre la cantidad existente.
type BinSku struct {
	ID       int
	BinID    int
	SkuID    int
	Quantity int // siempre > 0
}
