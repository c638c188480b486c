package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
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
	store      *memstore.Store
	warehouses *usecase.WarehouseUseCase
	pallets    *usecase.PalletUseCase
	bins       *usecase.BinUseCase
	skus       *usecase.SkuUseCase
	stats      *usecase.StatsUseCase
	activity   *usecase.ActivityUseCase
}

// newFixture arma el juego completo de casos de uso sobre un Store en memoria.
func newFixture() *fixture {
	store := memstore.New()
	repos := store.Repos()
	return &fixture{
		store:      store,
		warehouses: usecase.NewWarehouseUseCase(store, repos.Warehouses, repos.Pallets),
		pallets:    usecase.NewPalletUseCase(store, repos.Pallets, repos.Bins, repos.Warehouses),
		bins:       usecase.NewBinUseCase(store, repos.Bins, repos.BinSkus, repos.Pallets),
		skus:       usecase.NewSkuUseCase(store, repos.Skus, repos.BinSkus),
		stats:      usecase.NewStatsUseCase(repos.Warehouses, repos.Pallets, repos.Bins, repos.Skus),
		activity:   usecase.NewActivityUseCase(repos.Activity),
	}
}

// lastActivity devuelve la entrada más reciente del log.
func lastActivity(t *testing.T, f *fixture) entity.ActivityEntry {
	t.Helper()
	entries := f.store.Activity()
	require.NotEmpty(t, entries, "debe existir al menos una entrada en el log")
	return entries[len(entries)-1]
}

// newLedger construye el caso de uso del ledger sobre el mismo Store.
func newLedger(f *fixture) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(f.store)
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouse_CrearRegistraActividad(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "North DC", Address: "Calle 1"})
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.NotZero(t, w.ID)

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionCreate, entry.Action)
	assert.Equal(t, entity.EntityTypeWarehouse, entry.EntityType)
	assert.Equal(t, `Created warehouse "North DC"`, entry.Description)
}

func TestWarehouse_CrearSinNombreFalla(t *testing.T) {
	f := newFixture()

	_, err := f.warehouses.Create(context.Background(), dto.CreateWarehouseRequest{Address: "Calle 1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.store.Activity(), "una creación inválida no debe dejar rastro en el log")
}

func TestWarehouse_UpdateRegistraDiff(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "North", Address: "Calle 1"})
	require.NoError(t, err)

	updated, err := f.warehouses.Update(ctx, w.ID, dto.UpdateWarehouseRequest{Name: strPtr("South")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "South", updated.Name)
	assert.Equal(t, "Calle 1", updated.Address, "los campos ausentes del parche no deben cambiar")

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionUpdate, entry.Action)
	assert.Equal(t, `Updated warehouse "South" (name: "North" → "South")`, entry.Description)
}

func TestWarehouse_UpdateInexistenteDevuelveNil(t *testing.T) {
	f := newFixture()

	updated, err := f.warehouses.Update(context.Background(), 999, dto.UpdateWarehouseRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Empty(t, f.store.Activity())
}

func TestWarehouse_DeleteDejaPalletsSinAsignar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "North", Address: "Calle 1"})
	require.NoError(t, err)
	p, err := f.pallets.Create(ctx, dto.CreatePalletRequest{WarehouseID: &w.ID})
	require.NoError(t, err)

	require.NoError(t, f.warehouses.Delete(ctx, w.ID))

	got, err := f.pallets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.WarehouseID, "el pallet debe quedar sin almacén, no borrarse")

	entry := lastActivity(t, f)
	assert.Equal(t, entity.ActionDelete, entry.Action)
	assert.Equal(t, `Deleted warehouse "North"`, entry.Description)
}

func TestWarehouse_DeleteInexistenteNoEsError(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.warehouses.Delete(context.Background(), 999))
	assert.Empty(t, f.store.Activity(), "borrar un id inexistente no debe loguear")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pallets: numeración y parentesco
// ──────────────────────────────────────────────────────────────────────────────

func TestPallet_NumeracionSecuencial(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p, err := f.pallets.Create(ctx, dto.CreatePalletRequest{})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("PLT%07d", i), p.PalletNumber)
	}
}

func TestPallet_NombrePorDefectoEsElNumero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.pallets.Create(ctx, dto.CreatePalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, p.PalletNumber, p.Name)

	named, err := f.pallets.Create(ctx, dto.CreatePalletRequest{Name: "Recepción"})
	require.NoError(t, err)
	assert.Equal(t, "Recepción", named.Name)
}

func TestPallet_CrearConAlmacenInexistenteFalla(t *testing.T) {
	f := newFixture()
	missing := 999

	_, err := f.pallets.Create(context.Background(), dto.CreatePalletRequest{WarehouseID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPallet_CodigoUbicacionLargoFalla(t *testing.T) {
	f := newFixture()

	_, err := f.pallets.Create(context.Background(), dto.CreatePalletRequest{LocationCode: strPtr("A-01-02-03")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPallet_UpdateDescribeAlmacenPorNombre(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	north, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "North", Address: "Calle 1"})
	require.NoError(t, err)
	south, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "South", Address: "Calle 2"})
	require.NoError(t, err)
	p, err := f.pallets.Create(ctx, dto.CreatePalletRequest{WarehouseID: &north.ID})
	require.NoError(t, err)

	updated, err := f.pallets.Update(ctx, p.ID, dto.UpdatePalletRequest{WarehouseID: &south.ID})
	require.NoError(t, err)
	require.NotNil(t, updated)

	entry := lastActivity(t, f)
	assert.Contains(t, entry.Description, `warehouse: "North" → "South"`,
		"el diff debe usar nombres de almacén, no ids")
}

// ──────────────────────────────────────────────────────────────────────────────
// Bins
// ──────────────────────────────────────────────────────────────────────────────

func TestBin_NumeracionIndependienteDePallets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.pallets.Create(ctx, dto.CreatePalletRequest{})
	require.NoError(t, err)

	b, err := f.bins.Create(ctx, dto.CreateBinRequest{})
	require.NoError(t, err)
	assert.Equal(t, "BIN0000001", b.BinNumber, "cada prefijo lleva su propia secuencia")
}

func TestBin_DeleteConContenidoDescartaJoin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.bins.Create(ctx, dto.CreateBinRequest{})
	require.NoError(t, err)
	s, err := f.skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo"})
	require.NoError(t, err)

	ledger := newLedger(f)
	_, err = ledger.AddSkuToBin(ctx, b.ID, s.ID, 5)
	require.NoError(t, err)

	require.NoError(t, f.bins.Delete(ctx, b.ID))

	got, err := f.skus.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Locations, "el contenido del bin borrado no debe sobrevivir")
}

// ──────────────────────────────────────────────────────────────────────────────
// SKUs
// ──────────────────────────────────────────────────────────────────────────────

func TestSku_PrecioNegativoFalla(t *testing.T) {
	f := newFixture()

	_, err := f.skus.Create(context.Background(), dto.CreateSkuRequest{Name: "X", Price: decPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSku_UpdateDescribePrecioConDosDecimales(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s, err := f.skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo", Price: decPtr("12.5")})
	require.NoError(t, err)

	_, err = f.skus.Update(ctx, s.ID, dto.UpdateSkuRequest{Price: decPtr("13")})
	require.NoError(t, err)

	entry := lastActivity(t, f)
	assert.Contains(t, entry.Description, `price: "12.50" → "13.00"`)
}

func TestSku_UpdateImagenConEtiqueta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s, err := f.skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo"})
	require.NoError(t, err)

	_, err = f.skus.Update(ctx, s.ID, dto.UpdateSkuRequest{ImageURL: strPtr("/uploads/a.png")})
	require.NoError(t, err)
	assert.Contains(t, lastActivity(t, f).Description, "image: added")

	_, err = f.skus.Update(ctx, s.ID, dto.UpdateSkuRequest{ImageURL: strPtr("/uploads/b.png")})
	require.NoError(t, err)
	assert.Contains(t, lastActivity(t, f).Description, "image: updated")
}

func TestSku_QuitarImagenConCadenaVacia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s, err := f.skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo", ImageURL: strPtr("/uploads/a.png")})
	require.NoError(t, err)

	updated, err := f.skus.Update(ctx, s.ID, dto.UpdateSkuRequest{ImageURL: strPtr("")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.ImageURL, "quitar la imagen persiste nulo, no cadena vacía")
	assert.Contains(t, lastActivity(t, f).Description, "image: removed")
}

func TestSku_DeleteEnCascadaDesdeTodosLosBins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b1, err := f.bins.Create(ctx, dto.CreateBinRequest{})
	require.NoError(t, err)
	b2, err := f.bins.Create(ctx, dto.CreateBinRequest{})
	require.NoError(t, err)
	s, err := f.skus.Create(ctx, dto.CreateSkuRequest{Name: "Tornillo"})
	require.NoError(t, err)

	ledger := newLedger(f)
	_, err = ledger.AddSkuToBin(ctx, b1.ID, s.ID, 3)
	require.NoError(t, err)
	_, err = ledger.AddSkuToBin(ctx, b2.ID, s.ID, 7)
	require.NoError(t, err)

	require.NoError(t, f.skus.Delete(ctx, s.ID))

	bin1, err := f.bins.GetByID(ctx, b1.ID)
	require.NoError(t, err)
	assert.Empty(t, bin1.BinSkus)
	bin2, err := f.bins.GetByID(ctx, b2.ID)
	require.NoError(t, err)
	assert.Empty(t, bin2.BinSkus)

	entry := lastActivity(t, f)
	assert.Equal(t, `Deleted SKU "Tornillo" and removed from all bins`, entry.Description)
}

func TestSku_ImportReportaFallosSinAbortar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.skus.Import(ctx, []dto.ImportSkuRow{
		{Name: "Tornillo", Description: "M4"},
		{Name: ""}, // sin nombre: debe fallar
		{Name: "Tuerca"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Failed to create SKU: ", result.Errors[0])
	assert.Len(t, result.Skus, 2)
	assert.Equal(t, "SKU0000001", result.Skus[0].SkuNumber)
	assert.Equal(t, "SKU0000002", result.Skus[1].SkuNumber, "las filas fallidas no consumen número")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats y actividad
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_ConteosPorTipo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "N", Address: "C1"})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = f.pallets.Create(ctx, dto.CreatePalletRequest{})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err = f.bins.Create(ctx, dto.CreateBinRequest{})
		require.NoError(t, err)
	}

	stats, err := f.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Warehouses)
	assert.Equal(t, 2, stats.Pallets)
	assert.Equal(t, 3, stats.Bins)
	assert.Equal(t, 0, stats.Skus)
}

func TestActivity_MasRecientePrimeroYPaginado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{
			Name:    fmt.Sprintf("W%d", i),
			Address: "C",
		})
		require.NoError(t, err)
	}

	page, err := f.activity.Recent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, `Created warehouse "W5"`, page[0].Description)
	assert.Equal(t, `Created warehouse "W4"`, page[1].Description)

	page, err = f.activity.Recent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, `Created warehouse "W3"`, page[0].Description)
}

func TestActivity_LimiteClampeado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.warehouses.Create(ctx, dto.CreateWarehouseRequest{Name: "W", Address: "C"})
	require.NoError(t, err)

	page, err := f.activity.Recent(ctx, -5, -3)
	require.NoError(t, err)
	assert.Len(t, page, 1, "limit y offset inválidos deben normalizarse, no fallar")
}
