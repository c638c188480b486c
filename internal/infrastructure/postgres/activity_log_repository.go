package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo log de actividad append-only sobre PostgreSQL (usable con
// pool o tx). Solo inserta y lee: no hay UPDATE ni DELETE sobre la tabla.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Log inserta una entrada. El timestamp lo pone la base (NOW()) y se devuelve
// junto con el ID generado.
func (r *ActivityLogRepo) Log(ctx context.Context, entry *entity.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (action, entity_type, entity_id, entity_name, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		entry.Action, entry.EntityType, entry.EntityID, entry.EntityName, entry.Description,
	).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

// ListRecent devuelve las entradas más recientes primero, con paginación por
// offset. El desempate por id mantiene un orden estable cuando varias
// entradas comparten timestamp.
func (r *ActivityLogRepo) ListRecent(ctx context.Context, limit, offset int) ([]*entity.ActivityEntry, error) {
	query := `
		SELECT id, action, entity_type, entity_id, entity_name, description, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityEntry
	for rows.Next() {
		var e entity.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.EntityType, &e.EntityID, &e.EntityName, &e.Description, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
