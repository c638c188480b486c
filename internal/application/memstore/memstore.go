// Package memstore implementa los puertos de persistencia en memoria, con la
// misma semántica que los adaptadores PostgreSQL (numeración por secuencia,
// FK a NULL al borrar padres, cascada bin → bin_skus). Se usa como doble de
// prueba de los casos de uso; Run no simula rollback, así que solo sirve para
// tests del camino feliz y de validación previa a la escritura.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Store contiene todas las tablas en memoria.
type Store struct {
	mu         sync.Mutex
	nextID     int
	warehouses map[int]entity.Warehouse
	pallets    map[int]entity.Pallet
	bins       map[int]entity.Bin
	skus       map[int]entity.Sku
	binSkus    map[int]entity.BinSku
	sequences  map[string]int
	activity   []entity.ActivityEntry
}

// New construye un Store vacío.
func New() *Store {
	return &Store{
		warehouses: make(map[int]entity.Warehouse),
		pallets:    make(map[int]entity.Pallet),
		bins:       make(map[int]entity.Bin),
		skus:       make(map[int]entity.Sku),
		binSkus:    make(map[int]entity.BinSku),
		sequences:  make(map[string]int),
	}
}

// Repos devuelve el juego de repositorios sobre este Store.
func (s *Store) Repos() ports.TxRepos {
	return ports.TxRepos{
		Warehouses: &warehouseRepo{s},
		Pallets:    &palletRepo{s},
		Bins:       &binRepo{s},
		Skus:       &skuRepo{s},
		BinSkus:    &binSkuRepo{s},
		Sequences:  &sequenceRepo{s},
		Activity:   &activityRepo{s},
	}
}

// Run implementa ports.TxRunner. Ejecuta fn sobre los repos del Store;
// los cambios son inmediatos (sin rollback).
func (s *Store) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	return fn(s.Repos())
}

// Activity devuelve una copia del log en orden de inserción.
func (s *Store) Activity() []entity.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ActivityEntry, len(s.activity))
	copy(out, s.activity)
	return out
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

// ── Warehouses ───────────────────────────────────────────────────────────────

type warehouseRepo struct{ s *Store }

var _ repository.WarehouseRepository = (*warehouseRepo)(nil)

func (r *warehouseRepo) List(context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		c := w
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *warehouseRepo) GetByID(_ context.Context, id int) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	c := w
	return &c, nil
}

func (r *warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w.ID = r.s.id()
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.warehouses[w.ID]; ok {
		r.s.warehouses[w.ID] = *w
	}
	return nil
}

func (r *warehouseRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouses, id)
	// FK warehouse_id ON DELETE SET NULL
	for pid, p := range r.s.pallets {
		if p.WarehouseID != nil && *p.WarehouseID == id {
			p.WarehouseID = nil
			r.s.pallets[pid] = p
		}
	}
	return nil
}

func (r *warehouseRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.warehouses), nil
}

// ── Pallets ──────────────────────────────────────────────────────────────────

type palletRepo struct{ s *Store }

var _ repository.PalletRepository = (*palletRepo)(nil)

func (r *palletRepo) List(context.Context) ([]*entity.Pallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Pallet, 0, len(r.s.pallets))
	for _, p := range r.s.pallets {
		c := p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PalletNumber < out[j].PalletNumber })
	return out, nil
}

func (r *palletRepo) ListByWarehouse(_ context.Context, warehouseID int) ([]*entity.Pallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Pallet
	for _, p := range r.s.pallets {
		if p.WarehouseID != nil && *p.WarehouseID == warehouseID {
			c := p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PalletNumber < out[j].PalletNumber })
	return out, nil
}

func (r *palletRepo) GetByID(_ context.Context, id int) (*entity.Pallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pallets[id]
	if !ok {
		return nil, nil
	}
	c := p
	return &c, nil
}

func (r *palletRepo) Create(_ context.Context, p *entity.Pallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.pallets[p.ID] = *p
	return nil
}

func (r *palletRepo) Update(_ context.Context, p *entity.Pallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pallets[p.ID]; ok {
		r.s.pallets[p.ID] = *p
	}
	return nil
}

func (r *palletRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.pallets, id)
	// FK pallet_id ON DELETE SET NULL
	for bid, b := range r.s.bins {
		if b.PalletID != nil && *b.PalletID == id {
			b.PalletID = nil
			r.s.bins[bid] = b
		}
	}
	return nil
}

func (r *palletRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.pallets), nil
}

// ── Bins ─────────────────────────────────────────────────────────────────────

type binRepo struct{ s *Store }

var _ repository.BinRepository = (*binRepo)(nil)

func (r *binRepo) List(context.Context) ([]*repository.BinListItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*repository.BinListItem, 0, len(r.s.bins))
	for _, b := range r.s.bins {
		item := &repository.BinListItem{Bin: b}
		for _, bs := range r.s.binSkus {
			if bs.BinID == b.ID {
				item.ItemCount++
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinNumber < out[j].BinNumber })
	return out, nil
}

func (r *binRepo) ListByPallet(_ context.Context, palletID int) ([]*entity.Bin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Bin
	for _, b := range r.s.bins {
		if b.PalletID != nil && *b.PalletID == palletID {
			c := b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinNumber < out[j].BinNumber })
	return out, nil
}

func (r *binRepo) GetByID(_ context.Context, id int) (*entity.Bin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bins[id]
	if !ok {
		return nil, nil
	}
	c := b
	return &c, nil
}

func (r *binRepo) Create(_ context.Context, b *entity.Bin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.id()
	r.s.bins[b.ID] = *b
	return nil
}

func (r *binRepo) Update(_ context.Context, b *entity.Bin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bins[b.ID]; ok {
		r.s.bins[b.ID] = *b
	}
	return nil
}

func (r *binRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.bins, id)
	// FK bin_id ON DELETE CASCADE
	for bsID, bs := range r.s.binSkus {
		if bs.BinID == id {
			delete(r.s.binSkus, bsID)
		}
	}
	return nil
}

func (r *binRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.bins), nil
}

// ── SKUs ─────────────────────────────────────────────────────────────────────

type skuRepo struct{ s *Store }

var _ repository.SkuRepository = (*skuRepo)(nil)

func (r *skuRepo) List(context.Context) ([]*entity.Sku, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sku, 0, len(r.s.skus))
	for _, s := range r.s.skus {
		c := s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkuNumber < out[j].SkuNumber })
	return out, nil
}

func (r *skuRepo) GetByID(_ context.Context, id int) (*entity.Sku, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	s, ok := r.s.skus[id]
	if !ok {
		return nil, nil
	}
	c := s
	return &c, nil
}

func (r *skuRepo) Create(_ context.Context, sku *entity.Sku) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sku.ID = r.s.id()
	r.s.skus[sku.ID] = *sku
	return nil
}

func (r *skuRepo) Update(_ context.Context, sku *entity.Sku) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.skus[sku.ID]; ok {
		r.s.skus[sku.ID] = *sku
	}
	return nil
}

func (r *skuRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.skus, id)
	return nil
}

func (r *skuRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.skus), nil
}

// ── BinSkus ──────────────────────────────────────────────────────────────────

type binSkuRepo struct{ s *Store }

var _ repository.BinSkuRepository = (*binSkuRepo)(nil)

func (r *binSkuRepo) find(binID, skuID int) (entity.BinSku, bool) {
	for _, bs := range r.s.binSkus {
		if bs.BinID == binID && bs.SkuID == skuID {
			return bs, true
		}
	}
	return entity.BinSku{}, false
}

func (r *binSkuRepo) Get(_ context.Context, binID, skuID int) (*entity.BinSku, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	bs, ok := r.find(binID, skuID)
	if !ok {
		return nil, nil
	}
	return &bs, nil
}

func (r *binSkuRepo) GetForUpdate(ctx context.Context, binID, skuID int) (*entity.BinSku, error) {
	return r.Get(ctx, binID, skuID)
}

func (r *binSkuRepo) Upsert(_ context.Context, binSku *entity.BinSku) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.find(binSku.BinID, binSku.SkuID); ok {
		binSku.ID = existing.ID
	} else {
		binSku.ID = r.s.id()
	}
	r.s.binSkus[binSku.ID] = *binSku
	return nil
}

func (r *binSkuRepo) Accumulate(_ context.Context, binSku *entity.BinSku) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.find(binSku.BinID, binSku.SkuID); ok {
		binSku.ID = existing.ID
		binSku.Quantity += existing.Quantity
	} else {
		binSku.ID = r.s.id()
	}
	r.s.binSkus[binSku.ID] = *binSku
	return nil
}

func (r *binSkuRepo) Delete(_ context.Context, binID, skuID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if bs, ok := r.find(binID, skuID); ok {
		delete(r.s.binSkus, bs.ID)
	}
	return nil
}

func (r *binSkuRepo) DeleteBySku(_ context.Context, skuID int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	removed := 0
	for id, bs := range r.s.binSkus {
		if bs.SkuID == skuID {
			delete(r.s.binSkus, id)
			removed++
		}
	}
	return removed, nil
}

func (r *binSkuRepo) ListByBin(_ context.Context, binID int) ([]*repository.BinSkuWithSku, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.BinSkuWithSku
	for _, bs := range r.s.binSkus {
		if bs.BinID != binID {
			continue
		}
		row := &repository.BinSkuWithSku{BinSku: bs}
		if sku, ok := r.s.skus[bs.SkuID]; ok {
			row.Sku = sku
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sku.SkuNumber < out[j].Sku.SkuNumber })
	return out, nil
}

func (r *binSkuRepo) ListBySku(_ context.Context, skuID int) ([]*repository.SkuLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.SkuLocation
	for _, bs := range r.s.binSkus {
		if bs.SkuID != skuID {
			continue
		}
		row := &repository.SkuLocation{BinSku: bs}
		if bin, ok := r.s.bins[bs.BinID]; ok {
			row.Bin = bin
			if bin.PalletID != nil {
				if pallet, ok := r.s.pallets[*bin.PalletID]; ok {
					c := pallet
					row.Pallet = &c
					if pallet.WarehouseID != nil {
						if warehouse, ok := r.s.warehouses[*pallet.WarehouseID]; ok {
							w := warehouse
							row.Warehouse = &w
						}
					}
				}
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bin.BinNumber < out[j].Bin.BinNumber })
	return out, nil
}

// ── Secuencias ───────────────────────────────────────────────────────────────

type sequenceRepo struct{ s *Store }

var _ repository.SequenceRepository = (*sequenceRepo)(nil)

func (r *sequenceRepo) Next(_ context.Context, prefix string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[prefix]++
	return r.s.sequences[prefix], nil
}

// ── Log de actividad ─────────────────────────────────────────────────────────

type activityRepo struct{ s *Store }

var _ repository.ActivityLogRepository = (*activityRepo)(nil)

func (r *activityRepo) Log(_ context.Context, entry *entity.ActivityEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry.ID = r.s.id()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	r.s.activity = append(r.s.activity, *entry)
	return nil
}

func (r *activityRepo) ListRecent(_ context.Context, limit, offset int) ([]*entity.ActivityEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ActivityEntry
	for i := len(r.s.activity) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		c := r.s.activity[i]
		out = append(out, &c)
	}
	return out, nil
}
