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
	"github.com/jhoicas/Bodega-api/internal/domain/numbering"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// MaxLocationCodeLen largo máximo del código de ubicación de un pallet.
const MaxLocationCodeLen = 6

// PalletUseCase casos de uso CRUD para pallets. La generación del número
// PLT corre en la misma transacción que el insert para que dos creaciones
// concurrentes nunca dupliquen número.
type PalletUseCase struct {
	tx         ports.TxRunner
	repo       repository.PalletRepository
	bins       repository.BinRepository
	warehouses repository.WarehouseRepository
}

// NewPalletUseCase construye el caso de uso.
func NewPalletUseCase(tx ports.TxRunner, repo repository.PalletRepository, bins repository.BinRepository, warehouses repository.WarehouseRepository) *PalletUseCase {
	return &PalletUseCase{tx: tx, repo: repo, bins: bins, warehouses: warehouses}
}

// List lista los pallets ordenados por número.
func (uc *PalletUseCase) List(ctx context.Context) ([]dto.PalletResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PalletResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPalletResponse(p))
	}
	return items, nil
}

// GetByID obtiene un pallet con sus bins y el almacén resuelto. Devuelve nil
// (sin error) si no existe.
func (uc *PalletUseCase) GetByID(ctx context.Context, id int) (*dto.PalletWithBinsResponse, error) {
	pallet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pallet == nil {
		return nil, nil
	}
	bins, err := uc.bins.ListByPallet(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.PalletWithBinsResponse{
		PalletResponse: *toPalletResponse(pallet),
		Bins:           make([]dto.BinResponse, 0, len(bins)),
	}
	for _, b := range bins {
		out.Bins = append(out.Bins, *toBinResponse(b))
	}
	if pallet.WarehouseID != nil {
		warehouse, err := uc.warehouses.GetByID(ctx, *pallet.WarehouseID)
		if err != nil {
			return nil, err
		}
		out.Warehouse = toWarehouseResponse(warehouse)
	}
	return out, nil
}

// Create genera el número PLT, crea el pallet (nombre por defecto = número)
// y registra la actividad CREATE, todo en una transacción.
func (uc *PalletUseCase) Create(ctx context.Context, in dto.CreatePalletRequest) (*dto.PalletResponse, error) {
	if in.LocationCode != nil && len(*in.LocationCode) > MaxLocationCodeLen {
		return nil, domain.ErrInvalidInput
	}
	var pallet *entity.Pallet
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if in.WarehouseID != nil {
			warehouse, err := r.Warehouses.GetByID(ctx, *in.WarehouseID)
			if err != nil {
				return err
			}
			if warehouse == nil {
				return domain.ErrNotFound
			}
		}
		next, err := r.Sequences.Next(ctx, numbering.PrefixPallet)
		if err != nil {
			return err
		}
		number := numbering.Format(numbering.PrefixPallet, next)
		name := in.Name
		if name == "" {
			name = number
		}
		pallet = &entity.Pallet{
			PalletNumber: number,
			Name:         name,
			WarehouseID:  in.WarehouseID,
			LocationCode: in.LocationCode,
		}
		if err := r.Pallets.Create(ctx, pallet); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionCreate,
			EntityType:  entity.EntityTypePallet,
			EntityID:    pallet.ID,
			EntityName:  pallet.DisplayName(),
			Description: fmt.Sprintf("Created pallet %q", pallet.DisplayName()),
		})
	})
	if err != nil {
		return nil, err
	}
	return toPalletResponse(pallet), nil
}

// Update aplica un parche parcial y registra el diff. El cambio de almacén se
// describe con los nombres de los almacenes, no con ids. Devuelve nil si el
// id no existe.
func (uc *PalletUseCase) Update(ctx context.Context, id int, in dto.UpdatePalletRequest) (*dto.PalletResponse, error) {
	if in.LocationCode != nil && len(*in.LocationCode) > MaxLocationCodeLen {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Pallet
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		original, err := r.Pallets.GetByID(ctx, id)
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
		if in.WarehouseID != nil {
			oldName, err := uc.warehouseName(ctx, r, original.WarehouseID)
			if err != nil {
				return err
			}
			target, err := r.Warehouses.GetByID(ctx, *in.WarehouseID)
			if err != nil {
				return err
			}
			if target == nil {
				return domain.ErrNotFound
			}
			diff.Ref("warehouse", oldName, target.Name)
			patched.WarehouseID = in.WarehouseID
		}
		if in.LocationCode != nil {
			diff.Text("location", audit.OrNone(original.LocationCode), *in.LocationCode)
			patched.LocationCode = in.LocationCode
		}
		if err := r.Pallets.Update(ctx, &patched); err != nil {
			return err
		}
		updated = &patched
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionUpdate,
			EntityType:  entity.EntityTypePallet,
			EntityID:    patched.ID,
			EntityName:  patched.DisplayName(),
			Description: fmt.Sprintf("Updated pallet %q%s", patched.DisplayName(), diff.Suffix()),
		})
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toPalletResponse(updated), nil
}

// Delete elimina un pallet y registra la actividad DELETE. Los bins que
// apuntaban a él quedan sin asignar (FK a NULL).
func (uc *PalletUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		pallet, err := r.Pallets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pallet == nil {
			return nil
		}
		if err := r.Pallets.Delete(ctx, id); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionDelete,
			EntityType:  entity.EntityTypePallet,
			EntityID:    pallet.ID,
			EntityName:  pallet.DisplayName(),
			Description: fmt.Sprintf("Deleted pallet %q", pallet.DisplayName()),
		})
	})
}

// warehouseName resuelve el nombre de un almacén para el diff; cadena vacía
// si el id es nulo (pallet sin asignar).
func (uc *PalletUseCase) warehouseName(ctx context.Context, r ports.TxRepos, id *int) (string, error) {
	if id == nil {
		return "", nil
	}
	warehouse, err := r.Warehouses.GetByID(ctx, *id)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", nil
	}
	return warehouse.Name, nil
}

func toPalletResponse(p *entity.Pallet) *dto.PalletResponse {
	if p == nil {
		return nil
	}
	return &dto.PalletResponse{
		ID:           p.ID,
		PalletNumber: p.PalletNumber,
		Name:         p.Name,
		WarehouseID:  p.WarehouseID,
		LocationCode: p.LocationCode,
	}
}
