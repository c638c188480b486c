package usecase

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Paginación del log de actividad.
const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ActivityUseCase lectura del log de actividad, más reciente primero.
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Recent devuelve las entradas más recientes con paginación por offset.
// Aplica límite por defecto y tope máximo.
func (uc *ActivityUseCase) Recent(ctx context.Context, limit, offset int) ([]dto.ActivityResponse, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := uc.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ActivityResponse{
			ID:          e.ID,
			Action:      e.Action,
			EntityType:  e.EntityType,
			EntityID:    e.EntityID,
			EntityName:  e.EntityName,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}
	return items, nil
}
