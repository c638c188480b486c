package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/audit"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/numbering"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// SkuUseCase casos de uso CRUD para SKUs, incluida la baja en cascada sobre
// el join bin–SKU y la importación masiva desde CSV.
type SkuUseCase struct {
	tx      ports.TxRunner
	repo    repository.SkuRepository
	binSkus repository.BinSkuRepository
}

// NewSkuUseCase construye el caso de uso.
func NewSkuUseCase(tx ports.TxRunner, repo repository.SkuRepository, binSkus repository.BinSkuRepository) *SkuUseCase {
	return &SkuUseCase{tx: tx, repo: repo, binSkus: binSkus}
}

// List lista los SKUs ordenados por número.
func (uc *SkuUseCase) List(ctx context.Context) ([]dto.SkuResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SkuResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSkuResponse(s))
	}
	return items, nil
}

// GetByID obtiene un SKU con todas sus ubicaciones (bin → pallet → almacén).
// Devuelve nil (sin error) si no existe.
func (uc *SkuUseCase) GetByID(ctx context.Context, id int) (*dto.SkuWithLocationsResponse, error) {
	sku, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, nil
	}
	locations, err := uc.binSkus.ListBySku(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.SkuWithLocationsResponse{
		SkuResponse: *toSkuResponse(sku),
		Locations:   make([]dto.SkuLocationResponse, 0, len(locations)),
	}
	for _, loc := range locations {
		item := dto.SkuLocationResponse{
			BinID:     loc.Bin.ID,
			BinNumber: loc.Bin.BinNumber,
			BinName:   loc.Bin.DisplayName(),
			Quantity:  loc.Quantity,
		}
		item.Pallet = toPalletResponse(loc.Pallet)
		item.Warehouse = toWarehouseResponse(loc.Warehouse)
		out.Locations = append(out.Locations, item)
	}
	return out, nil
}

// Create genera el número SKU, crea el registro y registra la actividad
// CREATE. Name es obligatorio; Price, si viene, no puede ser negativo.
func (uc *SkuUseCase) Create(ctx context.Context, in dto.CreateSkuRequest) (*dto.SkuResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var sku *entity.Sku
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		next, err := r.Sequences.Next(ctx, numbering.PrefixSku)
		if err != nil {
			return err
		}
		sku = &entity.Sku{
			SkuNumber:   numbering.Format(numbering.PrefixSku, next),
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			ImageURL:    in.ImageURL,
		}
		if err := r.Skus.Create(ctx, sku); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionCreate,
			EntityType:  entity.EntityTypeSku,
			EntityID:    sku.ID,
			EntityName:  sku.Name,
			Description: fmt.Sprintf("Created SKU %q", sku.Name),
		})
	})
	if err != nil {
		return nil, err
	}
	return toSkuResponse(sku), nil
}

// Update aplica un parche parcial y registra el diff (precio con dos
// decimales, imagen con etiqueta cualitativa). Devuelve nil si el id no
// existe.
func (uc *SkuUseCase) Update(ctx context.Context, id int, in dto.UpdateSkuRequest) (*dto.SkuResponse, error) {
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Sku
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		original, err := r.Skus.GetByID(ctx, id)
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
		if in.Description != nil {
			diff.Text("description", audit.OrNone(original.Description), *in.Description)
			patched.Description = in.Description
		}
		if in.Price != nil {
			diff.Price(original.Price, in.Price)
			patched.Price = in.Price
		}
		if in.ImageURL != nil {
			diff.Image(original.ImageURL, in.ImageURL)
			// Cadena vacía = quitar la imagen; se persiste NULL, no "".
			patched.ImageURL = in.ImageURL
			if *in.ImageURL == "" {
				patched.ImageURL = nil
			}
		}
		if err := r.Skus.Update(ctx, &patched); err != nil {
			return err
		}
		updated = &patched
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionUpdate,
			EntityType:  entity.EntityTypeSku,
			EntityID:    patched.ID,
			EntityName:  patched.Name,
			Description: fmt.Sprintf("Updated SKU %q%s", patched.Name, diff.Suffix()),
		})
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toSkuResponse(updated), nil
}

// Delete elimina un SKU en cascada: primero todas las filas bin–SKU que lo
// referencian, luego el SKU, y una sola entrada DELETE que describe la
// cascada. Todo en una transacción.
func (uc *SkuUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		sku, err := r.Skus.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sku == nil {
			return nil
		}
		if _, err := r.BinSkus.DeleteBySku(ctx, id); err != nil {
			return err
		}
		if err := r.Skus.Delete(ctx, id); err != nil {
			return err
		}
		return r.Activity.Log(ctx, &entity.ActivityEntry{
			Action:      entity.ActionDelete,
			EntityType:  entity.EntityTypeSku,
			EntityID:    sku.ID,
			EntityName:  sku.Name,
			Description: fmt.Sprintf("Deleted SKU %q and removed from all bins", sku.Name),
		})
	})
}

// Import crea SKUs en lote desde filas ya parseadas del CSV. Cada fila pasa
// por el mismo camino de creación (número generado + log); las fallidas se
// reportan sin abortar el resto.
func (uc *SkuUseCase) Import(ctx context.Context, rows []dto.ImportSkuRow) (*dto.ImportSkusResult, error) {
	result := &dto.ImportSkusResult{Total: len(rows), Skus: make([]dto.SkuResponse, 0, len(rows))}
	for _, row := range rows {
		description := row.Description
		created, err := uc.Create(ctx, dto.CreateSkuRequest{
			Name:        row.Name,
			Description: &description,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to create SKU: %s", row.Name))
			continue
		}
		result.Imported++
		result.Skus = append(result.Skus, *created)
	}
	return result, nil
}

func toSkuResponse(s *entity.Sku) *dto.SkuResponse {
	if s == nil {
		return nil
	}
	return &dto.SkuResponse{
		ID:          s.ID,
		SkuNumber:   s.SkuNumber,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
	}
}
