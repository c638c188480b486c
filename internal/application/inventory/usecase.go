// Package inventory implementa el ledger de cantidades bin–SKU: el conjunto
// de hechos (bin, SKU, cantidad) con semántica de acumulación sobre
// duplicados. Cada operación corre completa dentro de una transacción; la
// acumulación suma en la base en una sola sentencia (no hay fila que
// bloquear en la primera inserción del par) y la escritura absoluta bloquea
// la fila existente (SELECT FOR UPDATE), de modo que dos llamadas
// concurrentes sobre el mismo par nunca pierden actualizaciones.
package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// LedgerUseCase operaciones sobre el join bin–SKU.
type LedgerUseCase struct {
	tx ports.TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(tx ports.TxRunner) *LedgerUseCase {
	return &LedgerUseCase{tx: tx}
}

// AddSkuToBin agrega unidades de un SKU a un bin. Si el par ya existe, la
// cantidad se acumula sobre la existente (a lo sumo una fila por par); si no,
// se crea la fila. La cantidad debe ser > 0 (el borde HTTP también la valida).
func (uc *LedgerUseCase) AddSkuToBin(ctx context.Context, binID, skuID, quantity int) (*dto.BinSkuResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var row entity.BinSku
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		bin, err := r.Bins.GetByID(ctx, binID)
		if err != nil {
			return err
		}
		sku, err := r.Skus.GetByID(ctx, skuID)
		if err != nil {
			return err
		}
		if bin == nil || sku == nil {
			return domain.ErrNotFound
		}

		// La suma ocurre en el repositorio, en una sola sentencia: leer la
		// fila y sumar en Go dejaría una ventana en la primera inserción
		// concurrente del par, donde no hay fila que bloquear.
		row = entity.BinSku{BinID: binID, SkuID: skuID, Quantity: quantity}
		if err := r.BinSkus.Accumulate(ctx, &row); err != nil {
			return err
		}

		entry := &entity.ActivityEntry{
			EntityType: entity.EntityTypeInventory,
			EntityID:   binID,
			EntityName: fmt.Sprintf("%s in %s", sku.Name, bin.DisplayName()),
		}
		if row.Quantity > quantity {
			entry.Action = entity.ActionUpdate
			entry.Description = fmt.Sprintf("Added %d units of %q to bin %q (total: %d)",
				quantity, sku.Name, bin.DisplayName(), row.Quantity)
		} else {
			entry.Action = entity.ActionCreate
			entry.Description = fmt.Sprintf("Added %d units of %q to bin %q",
				quantity, sku.Name, bin.DisplayName())
		}
		return r.Activity.Log(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return &dto.BinSkuResponse{ID: row.ID, BinID: row.BinID, SkuID: row.SkuID, Quantity: row.Quantity}, nil
}

// UpdateQuantity fija la cantidad absoluta de un SKU en un bin (no es un
// delta). Lee la cantidad previa para describir el cambio en el log como
// aumento o disminución. Si el par no existe devuelve ErrNotFound.
func (uc *LedgerUseCase) UpdateQuantity(ctx context.Context, binID, skuID, quantity int) (*dto.BinSkuResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var row entity.BinSku
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		existing, err := r.BinSkus.GetForUpdate(ctx, binID, skuID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		bin, err := r.Bins.GetByID(ctx, binID)
		if err != nil {
			return err
		}
		sku, err := r.Skus.GetByID(ctx, skuID)
		if err != nil {
			return err
		}
		if bin == nil || sku == nil {
			return domain.ErrNotFound
		}

		row = entity.BinSku{ID: existing.ID, BinID: binID, SkuID: skuID, Quantity: quantity}
		if err := r.BinSkus.Upsert(ctx, &row); err != nil {
			return err
		}

		delta := quantity - existing.Quantity
		if delta == 0 {
			return nil
		}
		verb := "Increased"
		if delta < 0 {
			verb = "Decreased"
			delta = -delta
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:     entity.ActionUpdate,
			EntityType: entity.EntityTypeInventory,
			EntityID:   binID,
			EntityName: fmt.Sprintf("%s in %s", sku.Name, bin.DisplayName()),
			Description: fmt.Sprintf("%s quantity of %q in bin %q by %d units (%d → %d)",
				verb, sku.Name, bin.DisplayName(), delta, existing.Quantity, quantity),
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.BinSkuResponse{ID: row.ID, BinID: row.BinID, SkuID: row.SkuID, Quantity: row.Quantity}, nil
}

// RemoveSkuFromBin elimina la fila del par y registra la actividad DELETE.
// Los nombres se resuelven antes de borrar. Quitar un par inexistente no es
// error.
func (uc *LedgerUseCase) RemoveSkuFromBin(ctx context.Context, binID, skuID int) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		existing, err := r.BinSkus.Get(ctx, binID, skuID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		bin, err := r.Bins.GetByID(ctx, binID)
		if err != nil {
			return err
		}
		sku, err := r.Skus.GetByID(ctx, skuID)
		if err != nil {
			return err
		}
		if bin == nil || sku == nil {
			return domain.ErrNotFound
		}
		if err := r.BinSkus.Delete(ctx, binID, skuID); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:     entity.ActionDelete,
			EntityType: entity.EntityTypeInventory,
			EntityID:   binID,
			EntityName: fmt.Sprintf("%s in %s", sku.Name, bin.DisplayName()),
			Description: fmt.Sprintf("Removed %d units of %q from bin %q",
				existing.Quantity, sku.Name, bin.DisplayName()),
		})
	})
}
