// Package numbering genera los identificadores legibles del sistema:
// prefijo de tres letras + secuencia decimal de siete dígitos con ceros a la
// izquierda (PLT0000001, BIN0000001, SKU0000001). El número es inmutable una
// vez asignado y la secuencia es 1-based por tipo de entidad.
package numbering

import "fmt"

// Prefijos por tipo de entidad.
const (
	PrefixPallet = "PLT"
	PrefixBin    = "BIN"
	PrefixSku    = "SKU"
)

// Width es el ancho fijo del sufijo numérico.
const Width = 7

// Format construye el identificador para la secuencia n (1-based).
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}
