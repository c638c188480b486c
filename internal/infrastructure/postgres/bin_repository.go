package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo implementación del puerto BinRepository sobre PostgreSQL (usable
// con pool o tx).
type BinRepo struct {
	q Querier
}

// NewBinRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBinRepository(q Querier) *BinRepo {
	return &BinRepo{q: q}
}

// List lista los bins ordenados por número, con el conteo de SKUs distintos
// de cada uno.
func (r *BinRepo) List(ctx context.Context) ([]*repository.BinListItem, error) {
	query := `
		SELECT b.id, b.bin_number, b.name, b.pallet_id, b.image_url, COUNT(bs.id)
		FROM bins b
		LEFT JOIN bin_skus bs ON bs.bin_id = b.id
		GROUP BY b.id
		ORDER BY b.bin_number`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	defer rows.Close()
	var list []*repository.BinListItem
	for rows.Next() {
		var item repository.BinListItem
		if err := rows.Scan(&item.ID, &item.BinNumber, &item.Name, &item.PalletID, &item.ImageURL, &item.ItemCount); err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ListByPallet lista los bins de un pallet ordenados por número.
func (r *BinRepo) ListByPallet(ctx context.Context, palletID int) ([]*entity.Bin, error) {
	query := `
		SELECT id, bin_number, name, pallet_id, image_url
		FROM bins WHERE pallet_id = $1 ORDER BY bin_number`
	rows, err := r.q.Query(ctx, query, palletID)
	if err != nil {
		return nil, fmt.Errorf("list bins by pallet: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bin
	for rows.Next() {
		var b entity.Bin
		if err := rows.Scan(&b.ID, &b.BinNumber, &b.Name, &b.PalletID, &b.ImageURL); err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetByID obtiene un bin por ID. Devuelve nil si no existe.
func (r *BinRepo) GetByID(ctx context.Context, id int) (*entity.Bin, error) {
	query := `SELECT id, bin_number, name, pallet_id, image_url FROM bins WHERE id = $1`
	var b entity.Bin
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.BinNumber, &b.Name, &b.PalletID, &b.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bin: %w", err)
	}
	return &b, nil
}

// Create persiste un nuevo bin y asigna el ID generado.
func (r *BinRepo) Create(ctx context.Context, bin *entity.Bin) error {
	query := `
		INSERT INTO bins (bin_number, name, pallet_id, image_url)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(ctx, query, bin.BinNumber, bin.Name, bin.PalletID, bin.ImageURL).Scan(&bin.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert bin %s: número duplicado: %w", bin.BinNumber, err)
		}
		return fmt.Errorf("insert bin: %w", err)
	}
	return nil
}

// Update actualiza un bin existente. El número no se toca: es inmutable.
func (r *BinRepo) Update(ctx context.Context, bin *entity.Bin) error {
	query := `UPDATE bins SET name = $2, pallet_id = $3, image_url = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, bin.ID, bin.Name, bin.PalletID, bin.ImageURL)
	if err != nil {
		return fmt.Errorf("update bin: %w", err)
	}
	return nil
}

// Delete elimina un bin por ID. Sus filas bin_skus caen en cascada.
func (r *BinRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bin: %w", err)
	}
	return nil
}

// Count devuelve el total de bins.
func (r *BinRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM bins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bins: %w", err)
	}
	return n, nil
}
