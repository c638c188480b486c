package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.BinSkuRepository = (*BinSkuRepo)(nil)

// BinSkuRepo implementación del puerto BinSkuRepository sobre PostgreSQL
// (usable con pool o tx). El constraint UNIQUE (bin_id, sku_id) garantiza a
// lo sumo una fila por par; Upsert se apoya en él.
type BinSkuRepo struct {
	q Querier
}

// NewBinSkuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBinSkuRepository(q Querier) *BinSkuRepo {
	return &BinSkuRepo{q: q}
}

// Get obtiene la fila del par (bin, SKU). Devuelve nil si no existe.
func (r *BinSkuRepo) Get(ctx context.Context, binID, skuID int) (*entity.BinSku, error) {
	query := `SELECT id, bin_id, sku_id, quantity FROM bin_skus WHERE bin_id = $1 AND sku_id = $2`
	return r.getRow(ctx, query, binID, skuID)
}

// GetForUpdate obtiene la fila del par con bloqueo de fila, para lecturas
// leer-modificar-escribir dentro de una transacción.
func (r *BinSkuRepo) GetForUpdate(ctx context.Context, binID, skuID int) (*entity.BinSku, error) {
	query := `SELECT id, bin_id, sku_id, quantity FROM bin_skus WHERE bin_id = $1 AND sku_id = $2 FOR UPDATE`
	return r.getRow(ctx, query, binID, skuID)
}

func (r *BinSkuRepo) getRow(ctx context.Context, query string, binID, skuID int) (*entity.BinSku, error) {
	var bs entity.BinSku
	err := r.q.QueryRow(ctx, query, binID, skuID).Scan(&bs.ID, &bs.BinID, &bs.SkuID, &bs.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bin_sku: %w", err)
	}
	return &bs, nil
}

// Upsert escribe la cantidad absoluta del par: inserta si no existe, pisa la
// cantidad si ya existe. Asigna el ID de la fila.
func (r *BinSkuRepo) Upsert(ctx context.Context, binSku *entity.BinSku) error {
	query := `
		INSERT INTO bin_skus (bin_id, sku_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (bin_id, sku_id) DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING id`
	err := r.q.QueryRow(ctx, query, binSku.BinID, binSku.SkuID, binSku.Quantity).Scan(&binSku.ID)
	if err != nil {
		return fmt.Errorf("upsert bin_sku: %w", err)
	}
	return nil
}

// Accumulate suma la cantidad sobre la existente en una sola sentencia:
// inserta si el par no existe, suma si ya existe. La suma ocurre en la base,
// no en Go, así que la primera inserción concurrente de un par no pierde
// unidades aunque ninguna transacción haya podido bloquear la fila. Deja en
// binSku el ID y la cantidad total resultante.
func (r *BinSkuRepo) Accumulate(ctx context.Context, binSku *entity.BinSku) error {
	query := `
		INSERT INTO bin_skus (bin_id, sku_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (bin_id, sku_id) DO UPDATE SET quantity = bin_skus.quantity + EXCLUDED.quantity
		RETURNING id, quantity`
	err := r.q.QueryRow(ctx, query, binSku.BinID, binSku.SkuID, binSku.Quantity).
		Scan(&binSku.ID, &binSku.Quantity)
	if err != nil {
		return fmt.Errorf("accumulate bin_sku: %w", err)
	}
	return nil
}

// Delete elimina la fila del par.
func (r *BinSkuRepo) Delete(ctx context.Context, binID, skuID int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bin_skus WHERE bin_id = $1 AND sku_id = $2`, binID, skuID)
	if err != nil {
		return fmt.Errorf("delete bin_sku: %w", err)
	}
	return nil
}

// DeleteBySku elimina todas las filas de un SKU (cascada al borrar el SKU).
// Devuelve cuántas filas se borraron.
func (r *BinSkuRepo) DeleteBySku(ctx context.Context, skuID int) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM bin_skus WHERE sku_id = $1`, skuID)
	if err != nil {
		return 0, fmt.Errorf("delete bin_skus by sku: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListByBin lista el contenido de un bin con el SKU resuelto, ordenado por
// número de SKU.
func (r *BinSkuRepo) ListByBin(ctx context.Context, binID int) ([]*repository.BinSkuWithSku, error) {
	query := `
		SELECT bs.id, bs.bin_id, bs.sku_id, bs.quantity,
		       s.id, s.sku_number, s.name, s.description, s.price, s.image_url
		FROM bin_skus bs
		JOIN skus s ON s.id = bs.sku_id
		WHERE bs.bin_id = $1
		ORDER BY s.sku_number`
	rows, err := r.q.Query(ctx, query, binID)
	if err != nil {
		return nil, fmt.Errorf("list bin_skus by bin: %w", err)
	}
	defer rows.Close()
	var list []*repository.BinSkuWithSku
	for rows.Next() {
		var row repository.BinSkuWithSku
		if err := rows.Scan(
			&row.ID, &row.BinID, &row.SkuID, &row.Quantity,
			&row.Sku.ID, &row.Sku.SkuNumber, &row.Sku.Name, &row.Sku.Description, &row.Sku.Price, &row.Sku.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan bin_sku: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ListBySku lista las ubicaciones de un SKU con la cadena bin → pallet →
// almacén resuelta (pallet y almacén pueden venir nulos), ordenado por número
// de bin.
func (r *BinSkuRepo) ListBySku(ctx context.Context, skuID int) ([]*repository.SkuLocation, error) {
	query := `
		SELECT bs.id, bs.bin_id, bs.sku_id, bs.quantity,
		       b.id, b.bin_number, b.name, b.pallet_id, b.image_url,
		       p.id, p.pallet_number, p.name, p.warehouse_id, p.location_code,
		       w.id, w.name, w.address
		FROM bin_skus bs
		JOIN bins b ON b.id = bs.bin_id
		LEFT JOIN pallets p ON p.id = b.pallet_id
		LEFT JOIN warehouses w ON w.id = p.warehouse_id
		WHERE bs.sku_id = $1
		ORDER BY b.bin_number`
	rows, err := r.q.Query(ctx, query, skuID)
	if err != nil {
		return nil, fmt.Errorf("list bin_skus by sku: %w", err)
	}
	defer rows.Close()
	var list []*repository.SkuLocation
	for rows.Next() {
		var (
			row          repository.SkuLocation
			palletID     *int
			palletNumber *string
			palletName   *string
			warehouseID  *int
			locationCode *string
			whID         *int
			whName       *string
			whAddress    *string
		)
		if err := rows.Scan(
			&row.ID, &row.BinID, &row.SkuID, &row.Quantity,
			&row.Bin.ID, &row.Bin.BinNumber, &row.Bin.Name, &row.Bin.PalletID, &row.Bin.ImageURL,
			&palletID, &palletNumber, &palletName, &warehouseID, &locationCode,
			&whID, &whName, &whAddress,
		); err != nil {
			return nil, fmt.Errorf("scan sku location: %w", err)
		}
		if palletID != nil {
			row.Pallet = &entity.Pallet{
				ID:           *palletID,
				PalletNumber: *palletNumber,
				Name:         *palletName,
				WarehouseID:  warehouseID,
				LocationCode: locationCode,
			}
		}
		if whID != nil {
			row.Warehouse = &entity.Warehouse{ID: *whID, Name: *whName, Address: *whAddress}
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
