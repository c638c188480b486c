package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/memstore"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
	apphttp "github.com/jhoicas/Bodega-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre un Store en
// memoria, sin blob store (los endpoints de upload no se prueban aquí).
func buildTestApp() *fiber.App {
	store := memstore.New()
	repos := store.Repos()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC: usecase.NewWarehouseUseCase(store, repos.Warehouses, repos.Pallets),
		PalletUC:    usecase.NewPalletUseCase(store, repos.Pallets, repos.Bins, repos.Warehouses),
		BinUC:       usecase.NewBinUseCase(store, repos.Bins, repos.BinSkus, repos.Pallets),
		SkuUC:       usecase.NewSkuUseCase(store, repos.Skus, repos.BinSkus),
		LedgerUC:    inventory.NewLedgerUseCase(store),
		StatsUC:     usecase.NewStatsUseCase(repos.Warehouses, repos.Pallets, repos.Bins, repos.Skus),
		ActivityUC:  usecase.NewActivityUseCase(repos.Activity),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de la respuesta en out.
func decode(t *testing.T, resp *nethttp.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// createBinAndSku da de alta un bin y un SKU y devuelve sus IDs.
func createBinAndSku(t *testing.T, app *fiber.App) (binID, skuID int) {
	t.Helper()
	var bin struct {
		ID int `json:"id"`
	}
	resp := doJSON(t, app, nethttp.MethodPost, "/api/bins", fiber.Map{"name": "Estante A"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	decode(t, resp, &bin)

	var sku struct {
		ID int `json:"id"`
	}
	resp = doJSON(t, app, nethttp.MethodPost, "/api/skus", fiber.Map{"name": "Tornillo M4"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	decode(t, resp, &sku)
	return bin.ID, sku.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Warehouses
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_CrearAlmacen(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/warehouses", fiber.Map{
		"name": "North DC", "address": "Calle 1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	decode(t, resp, &out)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "North DC", out.Name)
}

func TestHTTP_CrearAlmacenSinNombreDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/warehouses", fiber.Map{"address": "Calle 1"})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_AlmacenInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, nethttp.MethodGet, "/api/warehouses/999", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, nethttp.MethodPut, "/api/warehouses/999", fiber.Map{"name": "X"})
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestHTTP_IDNoNumericoDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, nethttp.MethodGet, "/api/warehouses/abc", nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario bin–SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_AgregarSkuABinYAcumular(t *testing.T) {
	app := buildTestApp()
	binID, skuID := createBinAndSku(t, app)

	resp := doJSON(t, app, nethttp.MethodPost, fmt.Sprintf("/api/bins/%d/skus", binID),
		fiber.Map{"sku_id": skuID, "quantity": 5})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, nethttp.MethodPost, fmt.Sprintf("/api/bins/%d/skus", binID),
		fiber.Map{"sku_id": skuID, "quantity": 3})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var out struct {
		Quantity int `json:"quantity"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 8, out.Quantity)
}

func TestHTTP_CantidadCeroDevuelve400(t *testing.T) {
	app := buildTestApp()
	binID, skuID := createBinAndSku(t, app)

	resp := doJSON(t, app, nethttp.MethodPost, fmt.Sprintf("/api/bins/%d/skus", binID),
		fiber.Map{"sku_id": skuID, "quantity": 0})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, nethttp.MethodPut, fmt.Sprintf("/api/bins/%d/skus/%d", binID, skuID),
		fiber.Map{"quantity": -1})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_FijarCantidadDeParInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp()
	binID, skuID := createBinAndSku(t, app)

	resp := doJSON(t, app, nethttp.MethodPut, fmt.Sprintf("/api/bins/%d/skus/%d", binID, skuID),
		fiber.Map{"quantity": 4})
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestHTTP_RetirarSkuDeBin(t *testing.T) {
	app := buildTestApp()
	binID, skuID := createBinAndSku(t, app)

	resp := doJSON(t, app, nethttp.MethodPost, fmt.Sprintf("/api/bins/%d/skus", binID),
		fiber.Map{"sku_id": skuID, "quantity": 5})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, nethttp.MethodDelete, fmt.Sprintf("/api/bins/%d/skus/%d", binID, skuID), nil)
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)

	var bin struct {
		BinSkus []any `json:"bin_skus"`
	}
	resp = doJSON(t, app, nethttp.MethodGet, fmt.Sprintf("/api/bins/%d", binID), nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	decode(t, resp, &bin)
	assert.Empty(t, bin.BinSkus)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard e importación
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_StatsYActividad(t *testing.T) {
	app := buildTestApp()
	createBinAndSku(t, app)

	var stats struct {
		Bins int `json:"bins"`
		Skus int `json:"skus"`
	}
	resp := doJSON(t, app, nethttp.MethodGet, "/api/stats", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)
	assert.Equal(t, 1, stats.Bins)
	assert.Equal(t, 1, stats.Skus)

	var activity []struct {
		Description string `json:"description"`
	}
	resp = doJSON(t, app, nethttp.MethodGet, "/api/activity", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	decode(t, resp, &activity)
	require.Len(t, activity, 2)
	assert.Equal(t, `Created SKU "Tornillo M4"`, activity[0].Description, "la más reciente va primero")
}

func TestHTTP_ImportarSkusDesdeCSV(t *testing.T) {
	app := buildTestApp()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "skus.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name,description\nTornillo,M4\nTuerca,M4\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/skus/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out struct {
		Imported int `json:"imported"`
		Total    int `json:"total"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, 2, out.Total)
}
