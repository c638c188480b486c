package usecase

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// StatsUseCase conteos globales por tipo de entidad. Sin caché: cada llamada
// consulta en fresco.
type StatsUseCase struct {
	warehouses repository.WarehouseRepository
	pallets    repository.PalletRepository
	bins       repository.BinRepository
	skus       repository.SkuRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(
	warehouses repository.WarehouseRepository,
	pallets repository.PalletRepository,
	bins repository.BinRepository,
	skus repository.SkuRepository,
) *StatsUseCase {
	return &StatsUseCase{warehouses: warehouses, pallets: pallets, bins: bins, skus: skus}
}

// GetStats devuelve los conteos actuales de almacenes, pallets, bins y SKUs.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	warehouses, err := uc.warehouses.Count(ctx)
	if err != nil {
		return nil, err
	}
	pallets, err := uc.pallets.Count(ctx)
	if err != nil {
		return nil, err
	}
	bins, err := uc.bins.Count(ctx)
	if err != nil {
		return nil, err
	}
	skus, err := uc.skus.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Warehouses: warehouses,
		Pallets:    pallets,
		Bins:       bins,
		Skus:       skus,
	}, nil
}
