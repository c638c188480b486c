package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.SkuRepository = (*SkuRepo)(nil)

// SkuRepo implementación del puerto SkuRepository sobre PostgreSQL (usable
// con pool o tx).
type SkuRepo struct {
	q Querier
}

// NewSkuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

const skuColumns = `id, sku_number, name, description, price, image_url`

// List lista los SKUs ordenados por número.
func (r *SkuRepo) List(ctx context.Context) ([]*entity.Sku, error) {
	query := `SELECT ` + skuColumns + ` FROM skus ORDER BY sku_number`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sku
	for rows.Next() {
		var s entity.Sku
		if err := rows.Scan(&s.ID, &s.SkuNumber, &s.Name, &s.Description, &s.Price, &s.ImageURL); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene un SKU por ID. Devuelve nil si no existe.
func (r *SkuRepo) GetByID(ctx context.Context, id int) (*entity.Sku, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE id = $1`
	var s entity.Sku
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.SkuNumber, &s.Name, &s.Description, &s.Price, &s.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// Create persiste un nuevo SKU y asigna el ID generado.
func (r *SkuRepo) Create(ctx context.Context, sku *entity.Sku) error {
	query := `
		INSERT INTO skus (sku_number, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sku.SkuNumber, sku.Name, sku.Description, sku.Price, sku.ImageURL,
	).Scan(&sku.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert sku %s: número duplicado: %w", sku.SkuNumber, err)
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// Update actualiza un SKU existente. El número no se toca: es inmutable.
func (r *SkuRepo) Update(ctx context.Context, sku *entity.Sku) error {
	query := `UPDATE skus SET name = $2, description = $3, price = $4, image_url = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, sku.ID, sku.Name, sku.Description, sku.Price, sku.ImageURL)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// Delete elimina un SKU por ID. El caso de uso borra antes sus filas bin_skus
// dentro de la misma transacción.
func (r *SkuRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

// Count devuelve el total de SKUs.
func (r *SkuRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM skus`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}
