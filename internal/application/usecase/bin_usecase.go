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

// BinUseCase casos de uso CRUD para bins. Mismo patrón transaccional que
// PalletUseCase: número BIN + insert + log en una sola transacción.
type BinUseCase struct {
	tx      ports.TxRunner
	repo    repository.BinRepository
	binSkus repository.BinSkuRepository
	pallets repository.PalletRepository
}

// NewBinUseCase construye el caso de uso.
func NewBinUseCase(tx ports.TxRunner, repo repository.BinRepository, binSkus repository.BinSkuRepository, pallets repository.PalletRepository) *BinUseCase {
	return &BinUseCase{tx: tx, repo: repo, binSkus: binSkus, pallets: pallets}
}

// List lista los bins ordenados por número, con el conteo de SKUs de cada uno.
func (uc *BinUseCase) List(ctx context.Context) ([]dto.BinListItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BinListItemResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BinListItemResponse{
			BinResponse: *toBinResponse(&b.Bin),
			ItemCount:   b.ItemCount,
		})
	}
	return items, nil
}

// GetByID obtiene un bin con su contenido (SKUs y cantidades) y el pallet
// resuelto. Devuelve nil (sin error) si no existe.
func (uc *BinUseCase) GetByID(ctx context.Context, id int) (*dto.BinWithSkusResponse, error) {
	bin, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, nil
	}
	rows, err := uc.binSkus.ListByBin(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.BinWithSkusResponse{
		BinResponse: *toBinResponse(bin),
		BinSkus:     make([]dto.BinSkuWithSkuResponse, 0, len(rows)),
	}
	for _, row := range rows {
		out.BinSkus = append(out.BinSkus, dto.BinSkuWithSkuResponse{
			BinSkuResponse: *toBinSkuResponse(&row.BinSku),
			Sku:            *toSkuResponse(&row.Sku),
		})
	}
	if bin.PalletID != nil {
		pallet, err := uc.pallets.GetByID(ctx, *bin.PalletID)
		if err != nil {
			return nil, err
		}
		out.Pallet = toPalletResponse(pallet)
	}
	return out, nil
}

// Create genera el número BIN, crea el bin (nombre por defecto = número) y
// registra la actividad CREATE.
func (uc *BinUseCase) Create(ctx context.Context, in dto.CreateBinRequest) (*dto.BinResponse, error) {
	var bin *entity.Bin
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if in.PalletID != nil {
			pallet, err := r.Pallets.GetByID(ctx, *in.PalletID)
			if err != nil {
				return err
			}
			if pallet == nil {
				return domain.ErrNotFound
			}
		}
		next, err := r.Sequences.Next(ctx, numbering.PrefixBin)
		if err != nil {
			return err
		}
		number := numbering.Format(numbering.PrefixBin, next)
		name := in.Name
		if name == "" {
			name = number
		}
		bin = &entity.Bin{
			BinNumber: number,
			Name:      name,
			PalletID:  in.PalletID,
			ImageURL:  in.ImageURL,
		}
		if err := r.Bins.Create(ctx, bin); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionCreate,
			EntityType:  entity.EntityTypeBin,
			EntityID:    bin.ID,
			EntityName:  bin.DisplayName(),
			Description: fmt.Sprintf("Created bin %q", bin.DisplayName()),
		})
	})
	if err != nil {
		return nil, err
	}
	return toBinResponse(bin), nil
}

// Update aplica un parche parcial y registra el diff. El cambio de pallet se
// describe con nombre o número del pallet; el de imagen con etiqueta
// cualitativa. Devuelve nil si el id no existe.
func (uc *BinUseCase) Update(ctx context.Context, id int, in dto.UpdateBinRequest) (*dto.BinResponse, error) {
	var updated *entity.Bin
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		original, err := r.Bins.GetByID(ctx, id)
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
		if in.PalletID != nil {
			oldName, err := uc.palletName(ctx, r, original.PalletID)
			if err != nil {
				return err
			}
			target, err := r.Pallets.GetByID(ctx, *in.PalletID)
			if err != nil {
				return err
			}
			if target == nil {
				return domain.ErrNotFound
			}
			diff.Ref("pallet", oldName, target.DisplayName())
			patched.PalletID = in.PalletID
		}
		if in.ImageURL != nil {
			diff.Image(original.ImageURL, in.ImageURL)
			// Cadena vacía = quitar la imagen; se persiste NULL, no "".
			patched.ImageURL = in.ImageURL
			if *in.ImageURL == "" {
				patched.ImageURL = nil
			}
		}
		if err := r.Bins.Update(ctx, &patched); err != nil {
			return err
		}
		updated = &patched
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionUpdate,
			EntityType:  entity.EntityTypeBin,
			EntityID:    patched.ID,
			EntityName:  patched.DisplayName(),
			Description: fmt.Sprintf("Updated bin %q%s", patched.DisplayName(), diff.Suffix()),
		})
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toBinResponse(updated), nil
}

// Delete elimina un bin y registra la actividad DELETE. Las filas bin–SKU del
// bin caen en cascada (bin_id es NOT NULL).
func (uc *BinUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		bin, err := r.Bins.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if bin == nil {
			return nil
		}
		if err := r.Bins.Delete(ctx, id); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionDelete,
			EntityType:  entity.EntityTypeBin,
			EntityID:    bin.ID,
			EntityName:  bin.DisplayName(),
			Description: fmt.Sprintf("Deleted bin %q", bin.DisplayName()),
		})
	})
}

// palletName resuelve el nombre visible de un pallet para el diff; cadena
// vacía si el id es nulo (bin sin asignar).
func (uc *BinUseCase) palletName(ctx context.Context, r ports.TxRepos, id *int) (string, error) {
	if id == nil {
		return "", nil
	}
	pallet, err := r.Pallets.GetByID(ctx, *id)
	if err != nil {
		return "", err
	}
	if pallet == nil {
		return "", nil
	}
	return pallet.DisplayName(), nil
}

func toBinSkuResponse(bs *entity.BinSku) *dto.BinSkuResponse {
	if bs == nil {
		return nil
	}
	return &dto.BinSkuResponse{ID: bs.ID, BinID: bs.BinID, SkuID: bs.SkuID, Quantity: bs.Quantity}
}

func toBinResponse(b *entity.Bin) *dto.BinResponse {
	if b == nil {
		return nil
	}
	return &dto.BinResponse{
		ID:        b.ID,
		BinNumber: b.BinNumber,
		Name:      b.Name,
		PalletID:  b.PalletID,
		ImageURL:  b.ImageURL,
	}
}
