package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/memstore"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store  *memstore.Store
	ledger *inventory.LedgerUseCase
	binID  int
	skuID  int
}

// newFixture crea un Store con un bin y un SKU listos para mover inventario.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	repos := store.Repos()
	ctx := context.Background()

	bins := usecase.NewBinUseCase(store, repos.Bins, repos.BinSkus, repos.Pallets)
	skus := usecase.NewSkuUseCase(store, repos.Skus, repos.BinSkus)

	bin, err := bins.Create(ctx, dto.CreateBinRequest{Name: "Estante A"})
	require.NoError(t, err)
	sku, err := skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo M4"})
	require.NoError(t, err)

	return &fixture{
		store:  store,
		ledger: inventory.NewLedgerUseCase(store),
		binID:  bin.ID,
		skuID:  sku.ID,
	}
}

// lastActivity devuelve la entrada más reciente del log.
func lastActivity(t *testing.T, f *fixture) entity.ActivityEntry {
	t.Helper()
	entries := f.store.Activity()
	require.NotEmpty(t, entries)
	return entries[len(entries)-1]
}

// ──────────────────────────────────────────────────────────────────────────────
// AddSkuToBin: acumulación sobre duplicados
// ──────────────────────────────────────────────────────────────────────────────

func TestAddSkuToBin_CreaLaFila(t *testing.T) {
	f := newFixture(t)

	row, err := f.ledger.AddSkuToBin(context.Background(), f.binID, f.skuID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Quantity)

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionCreate, entry.Action)
	assert.Equal(t, entity.EntityTypeInventory, entry.EntityType)
	assert.Equal(t, `Added 5 units of "Tornillo M4" to bin "Estante A"`, entry.Description)
}

func TestAddSkuToBin_DuplicadoAcumula(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 5)
	require.NoError(t, err)
	row, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, row.Quantity, "agregar un par existente acumula, nunca duplica la fila")

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionUpdate, entry.Action)
	assert.Equal(t, `Added 3 units of "Tornillo M4" to bin "Estante A" (total: 8)`, entry.Description)
}

func TestAddSkuToBin_NuncaHayDosFilasPorPar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 1)
		require.NoError(t, err)
	}

	rows, err := f.store.Repos().BinSkus.ListByBin(ctx, f.binID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Quantity)
}

func TestAccumulate_SumaEnElRepositorioNoEnElCaller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	binSkus := f.store.Repos().BinSkus

	// Dos escrituras acumulativas del mismo par, cada una ignorante de la
	// otra: el repositorio debe sumar, nunca pisar con el último valor.
	first := entity.BinSku{BinID: f.binID, SkuID: f.skuID, Quantity: 3}
	require.NoError(t, binSkus.Accumulate(ctx, &first))
	assert.Equal(t, 3, first.Quantity)

	second := entity.BinSku{BinID: f.binID, SkuID: f.skuID, Quantity: 3}
	require.NoError(t, binSkus.Accumulate(ctx, &second))
	assert.Equal(t, 6, second.Quantity, "la acumulación suma sobre lo persistido, no sobre lo leído por el caller")
	assert.Equal(t, first.ID, second.ID, "sigue habiendo una sola fila por par")

	row, err := binSkus.Get(ctx, f.binID, f.skuID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 6, row.Quantity)
}

func TestAddSkuToBin_CantidadInvalidaFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddSkuToBin_BinOSkuInexistenteFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, 999, f.skuID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.ledger.AddSkuToBin(ctx, f.binID, 999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity: cantidad absoluta
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_FijaCantidadAbsoluta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 5)
	require.NoError(t, err)

	row, err := f.ledger.UpdateQuantity(ctx, f.binID, f.skuID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, row.Quantity, "la cantidad es absoluta, no un delta")

	entry := lastActivity(t, f)
	assert.Equal(t, `Increased quantity of "Tornillo M4" in bin "Estante A" by 7 units (5 → 12)`, entry.Description)
}

func TestUpdateQuantity_DisminucionEnElLog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 10)
	require.NoError(t, err)

	_, err = f.ledger.UpdateQuantity(ctx, f.binID, f.skuID, 4)
	require.NoError(t, err)

	entry := lastActivity(t, f)
	assert.Equal(t, `Decreased quantity of "Tornillo M4" in bin "Estante A" by 6 units (10 → 4)`, entry.Description)
}

func TestUpdateQuantity_SinCambioNoLoguea(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 5)
	require.NoError(t, err)
	before := len(f.store.Activity())

	row, err := f.ledger.UpdateQuantity(ctx, f.binID, f.skuID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Quantity)
	assert.Len(t, f.store.Activity(), before, "fijar la misma cantidad no debe generar entrada")
}

func TestUpdateQuantity_ParInexistenteFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.UpdateQuantity(context.Background(), f.binID, f.skuID, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveSkuFromBin
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveSkuFromBin_BorraYLoguea(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddSkuToBin(ctx, f.binID, f.skuID, 7)
	require.NoError(t, err)

	require.NoError(t, f.ledger.RemoveSkuFromBin(ctx, f.binID, f.skuID))

	rows, err := f.store.Repos().BinSkus.ListByBin(ctx, f.binID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionDelete, entry.Action)
	assert.Equal(t, `Removed 7 units of "Tornillo M4" from bin "Estante A"`, entry.Description)
}

func TestRemoveSkuFromBin_ParInexistenteNoEsError(t *testing.T) {
	f := newFixture(t)
	before := len(f.store.Activity())

	require.NoError(t, f.ledger.RemoveSkuFromBin(context.Background(), f.binID, f.skuID))
	assert.Len(t, f.store.Activity(), before, "quitar un par inexistente no debe loguear")
}
