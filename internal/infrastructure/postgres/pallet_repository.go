package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.PalletRepository = (*PalletRepo)(nil)

// PalletRepo implementación del puerto PalletRepository sobre PostgreSQL
// (usable con pool o tx).
type PalletRepo struct {
	q Querier
}

// NewPalletRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPalletRepository(q Querier) *PalletRepo {
	return &PalletRepo{q: q}
}

const palletColumns = `id, pallet_number, name, warehouse_id, location_code`

func scanPallet(row pgx.Row) (*entity.Pallet, error) {
	var p entity.Pallet
	err := row.Scan(&p.ID, &p.PalletNumber, &p.Name, &p.WarehouseID, &p.LocationCode)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista los pallets ordenados por número.
func (r *PalletRepo) List(ctx context.Context) ([]*entity.Pallet, error) {
	query := `SELECT ` + palletColumns + ` FROM pallets ORDER BY pallet_number`
	return r.queryPallets(ctx, query)
}

// ListByWarehouse lista los pallets de un almacén ordenados por número.
func (r *PalletRepo) ListByWarehouse(ctx context.Context, warehouseID int) ([]*entity.Pallet, error) {
	query := `SELECT ` + palletColumns + ` FROM pallets WHERE warehouse_id = $1 ORDER BY pallet_number`
	return r.queryPallets(ctx, query, warehouseID)
}

func (r *PalletRepo) queryPallets(ctx context.Context, query string, args ...any) ([]*entity.Pallet, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pallets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pallet
	for rows.Next() {
		p, err := scanPallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pallet: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un pallet por ID. Devuelve nil si no existe.
func (r *PalletRepo) GetByID(ctx context.Context, id int) (*entity.Pallet, error) {
	query := `SELECT ` + palletColumns + ` FROM pallets WHERE id = $1`
	p, err := scanPallet(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pallet: %w", err)
	}
	return p, nil
}

// Create persiste un nuevo pallet y asigna el ID generado.
func (r *PalletRepo) Create(ctx context.Context, pallet *entity.Pallet) error {
	query := `
		INSERT INTO pallets (pallet_number, name, warehouse_id, location_code)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pallet.PalletNumber, pallet.Name, pallet.WarehouseID, pallet.LocationCode,
	).Scan(&pallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert pallet %s: número duplicado: %w", pallet.PalletNumber, err)
		}
		return fmt.Errorf("insert pallet: %w", err)
	}
	return nil
}

// Update actualiza un pallet existente. El número no se toca: es inmutable.
func (r *PalletRepo) Update(ctx context.Context, pallet *entity.Pallet) error {
	query := `UPDATE pallets SET name = $2, warehouse_id = $3, location_code = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, pallet.ID, pallet.Name, pallet.WarehouseID, pallet.LocationCode)
	if err != nil {
		return fmt.Errorf("update pallet: %w", err)
	}
	return nil
}

// Delete elimina un pallet por ID. Los bins que lo referencian quedan con
// pallet_id NULL (FK ON DELETE SET NULL).
func (r *PalletRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM pallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pallet: %w", err)
	}
	return nil
}

// Count devuelve el total de pallets.
func (r *PalletRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pallets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pallets: %w", err)
	}
	return n, nil
}
