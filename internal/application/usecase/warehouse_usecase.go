package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/audit"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes. Toda mutación corre en
// una transacción junto con su entrada del log de actividad.
type WarehouseUseCase struct {
	tx      ports.TxRunner
	repo    repository.WarehouseRepository
	pallets repository.PalletRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(tx ports.TxRunner, repo repository.WarehouseRepository, pallets repository.PalletRepository) *WarehouseUseCase {
	return &WarehouseUseCase{tx: tx, repo: repo, pallets: pallets}
}

// List lista los almacenes ordenados por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// GetByID obtiene un almacén con sus pallets. Devuelve nil (sin error) si no
// existe; el caller decide la respuesta not-found.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int) (*dto.WarehouseWithPalletsResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	pallets, err := uc.pallets.ListByWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseWithPalletsResponse{
		WarehouseResponse: *toWarehouseResponse(warehouse),
		Pallets:           make([]dto.PalletResponse, 0, len(pallets)),
	}
	for _, p := range pallets {
		out.Pallets = append(out.Pallets, *toPalletResponse(p))
	}
	return out, nil
}

// Create crea un almacén y registra la actividad CREATE.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{Name: in.Name, Address: in.Address}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Warehouses.Create(ctx, warehouse); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionCreate,
			EntityType:  entity.EntityTypeWarehouse,
			EntityID:    warehouse.ID,
			EntityName:  warehouse.Name,
			Description: fmt.Sprintf("Created warehouse %q", warehouse.Name),
		})
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update aplica un parche parcial, registra el diff campo a campo en el log
// y devuelve el almacén actualizado. Devuelve nil si el id no existe.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	var updated *entity.Warehouse
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		original, err := r.Warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.ErrNotFound
		}

		var diff audit.Diff
		patched := *original
		if in.Name != nil && *in.Name != "" {
			diff.Text("name", original.Name, *in.Name)
			patched.Name = *in.Name
		}
		if in.Address != nil && *in.Address != "" {
			diff.Text("address", original.Address, *in.Address)
			patched.Address = *in.Address
		}
		if err := r.Warehouses.Update(ctx, &patched); err != nil {
			return err
		}
		updated = &patched
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionUpdate,
			EntityType:  entity.EntityTypeWarehouse,
			EntityID:    patched.ID,
			EntityName:  patched.Name,
			Description: fmt.Sprintf("Updated warehouse %q%s", patched.Name, diff.Suffix()),
		})
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(updated), nil
}

// Delete elimina un almacén y registra la actividad DELETE. Los pallets que
// apuntaban a él quedan sin asignar (FK a NULL). Borrar un id inexistente no
// es error.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		warehouse, err := r.Warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return nil
		}
		if err := r.Warehouses.Delete(ctx, id); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionDelete,
			EntityType:  entity.EntityTypeWarehouse,
			EntityID:    warehouse.ID,
			EntityName:  warehouse.Name,
			Description: fmt.Sprintf("Deleted warehouse %q", warehouse.Name),
		})
	})
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{ID: w.ID, Name: w.Name, Address: w.Address}
}
