package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// PalletRepository define el puerto de persistencia para Pallet (DIP).
// List ordena por número de pallet.
type PalletRepository interface {
	List(ctx context.Context) ([]*entity.Pallet, error)
	ListByWarehouse(ctx context.Context, warehouseID int) ([]*entity.Pallet, error)
	GetByID(ctx context.Context, id int) (*entity.Pallet, error)
	Create(ctx context.Context, pallet *entity.Pallet) error
	Update(ctx context.Context, pallet *entity.Pallet) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
