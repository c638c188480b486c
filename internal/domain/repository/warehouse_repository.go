package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	GetByID(ctx context.Context, id int) (*entity.Warehouse, error)
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
