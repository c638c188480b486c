package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador por prefijo sobre la tabla entity_sequences. El
// upsert atómico incrementa-y-devuelve en una sola sentencia, así que dos
// transacciones concurrentes nunca reciben el mismo número; la que hace
// rollback deja un hueco en la secuencia, lo cual es aceptable.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente valor de la secuencia del prefijo, creándola en
// 1 si no existe.
func (r *SequenceRepo) Next(ctx context.Context, prefix string) (int, error) {
	query := `
		INSERT INTO entity_sequences (prefix, value)
		VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET value = entity_sequences.value + 1
		RETURNING value`
	var value int
	if err := r.q.QueryRow(ctx, query, prefix).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", prefix, err)
	}
	return value, nil
}
