package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// SkuRepository define el puerto de persistencia para Sku (DIP).
// List ordena por número de SKU.
type SkuRepository interface {
	List(ctx context.Context) ([]*entity.Sku, error)
	GetByID(ctx context.Context, id int) (*entity.Sku, error)
	Create(ctx context.Context, sku *entity.Sku) error
	Update(ctx context.Context, sku *entity.Sku) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
