package repository

import "context"

// SequenceRepository entrega el siguiente valor de la secuencia por prefijo
// (PLT/BIN/SKU). Next debe ser atómico y llamarse dentro de la misma
// transacción que el insert que consume el número, para que dos creaciones
// concurrentes nunca obtengan el mismo valor.
type SequenceRepository interface {
	Next(ctx context.Context, prefix string) (int, error)
}
