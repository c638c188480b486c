package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodega-api/internal/domain/numbering"
)

func TestFormat_SietePosiciones(t *testing.T) {
	cases := []struct {
		prefix string
		n      int
		want   string
	}{
		{numbering.PrefixPallet, 1, "PLT0000001"},
		{numbering.PrefixBin, 1, "BIN0000001"},
		{numbering.PrefixSku, 1, "SKU0000001"},
		{numbering.PrefixPallet, 42, "PLT0000042"},
		{numbering.PrefixSku, 9999999, "SKU9999999"},
		{numbering.PrefixBin, 10000000, "BIN10000000"}, // desborda el ancho sin truncar
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numbering.Format(tc.prefix, tc.n))
	}
}

// TestFormat_SecuenciaEstrictamenteCreciente verifica que N formateos
// consecutivos producen identificadores crecientes y sin huecos en orden
// lexicográfico (propiedad clave para ordenar listados por número).
func TestFormat_SecuenciaEstrictamenteCreciente(t *testing.T) {
	prev := ""
	for n := 1; n <= 250; n++ {
		cur := numbering.Format(numbering.PrefixPallet, n)
		assert.Greater(t, cur, prev, "la secuencia debe crecer también como cadena")
		prev = cur
	}
}
