package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// BinSkuWithSku es una fila del join con el SKU resuelto, para el detalle
// de un bin.
type BinSkuWithSku struct {
	entity.BinSku
	Sku entity.Sku
}

// SkuLocation es una fila del join vista desde el SKU, con el bin resuelto y
// su cadena de pertenencia (pallet y almacén pueden ser nulos).
type SkuLocation struct {
	entity.BinSku
	Bin       entity.Bin
	Pallet    *entity.Pallet
	Warehouse *entity.Warehouse
}

// BinSkuRepository define el puerto de persistencia del join bin–SKU (DIP).
// Upsert escribe la cantidad absoluta apoyado en el constraint único
// (bin_id, sku_id); Accumulate suma sobre la cantidad existente en la misma
// sentencia, de modo que dos primeras inserciones concurrentes del mismo par
// nunca se pisan (la fila aún no existe y no hay nada que bloquear con FOR
// UPDATE); GetForUpdate bloquea la fila para lecturas leer-modificar-escribir
// dentro de una transacción cuando la fila ya existe.
type BinSkuRepository interface {
	Get(ctx context.Context, binID, skuID int) (*entity.BinSku, error)
	GetForUpdate(ctx context.Context, binID, skuID int) (*entity.BinSku, error)
	Upsert(ctx context.Context, binSku *entity.BinSku) error
	Accumulate(ctx context.Context, binSku *entity.BinSku) error
	Delete(ctx context.Context, binID, skuID int) error
	DeleteBySku(ctx context.Context, skuID int) (int, error)
	ListByBin(ctx context.Context, binID int) ([]*BinSkuWithSku, error)
	ListBySku(ctx context.Context, skuID int) ([]*SkuLocation, error)
}
