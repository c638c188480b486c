package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ActivityLogRepository define el puerto del log de actividad append-only.
// Log inserta; ListRecent lee en orden cronológico inverso con paginación
// por offset. No existen operaciones de borrado ni edición.
type ActivityLogRepository interface {
	Log(ctx context.Context, entry *entity.ActivityEntry) error
	ListRecent(ctx context.Context, limit, offset int) ([]*entity.ActivityEntry, error)
}
