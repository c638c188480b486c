package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// BinListItem es un bin con el número de SKUs distintos que contiene,
// para el listado general.
type BinListItem struct {
	entity.Bin
	ItemCount int
}

// BinRepository define el puerto de persistencia para Bin (DIP).
// List ordena por número de bin e incluye el conteo de SKUs.
type BinRepository interface {
	List(ctx context.Context) ([]*BinListItem, error)
	ListByPallet(ctx context.Context, palletID int) ([]*entity.Bin, error)
	GetByID(ctx context.Context, id int) (*entity.Bin, error)
	Create(ctx context.Context, bin *entity.Bin) error
	Update(ctx context.Context, bin *entity.Bin) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
