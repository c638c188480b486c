package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	PalletUC    *usecase.PalletUseCase
	BinUC       *usecase.BinUseCase
	SkuUC       *usecase.SkuUseCase
	LedgerUC    *inventory.LedgerUseCase
	StatsUC     *usecase.StatsUseCase
	ActivityUC  *usecase.ActivityUseCase
	ImageStore  ports.ImageStore
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Pallets
	pallets := api.Group("/pallets")
	palletHandler := NewPalletHandler(deps.PalletUC)
	pallets.Get("/", palletHandler.List)
	pallets.Post("/", palletHandler.Create)
	pallets.Get("/:id", palletHandler.GetByID)
	pallets.Put("/:id", palletHandler.Update)
	pallets.Delete("/:id", palletHandler.Delete)

	// Bins y su contenido
	bins := api.Group("/bins")
	binHandler := NewBinHandler(deps.BinUC)
	bins.Get("/", binHandler.List)
	bins.Post("/", binHandler.Create)
	bins.Get("/:id", binHandler.GetByID)
	bins.Put("/:id", binHandler.Update)
	bins.Delete("/:id", binHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	bins.Post("/:binId/skus", inventoryHandler.AddSkuToBin)
	bins.Put("/:binId/skus/:skuId", inventoryHandler.UpdateQuantity)
	bins.Delete("/:binId/skus/:skuId", inventoryHandler.RemoveSkuFromBin)

	// SKUs
	skus := api.Group("/skus")
	skuHandler := NewSkuHandler(deps.SkuUC)
	skus.Get("/", skuHandler.List)
	skus.Post("/", skuHandler.Create)
	skus.Post("/import", skuHandler.Import)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", skuHandler.Update)
	skus.Delete("/:id", skuHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.StatsUC, deps.ActivityUC)
	api.Get("/stats", dashboardHandler.GetStats)
	api.Get("/activity", dashboardHandler.GetActivity)

	// Uploads
	uploadHandler := NewUploadHandler(deps.ImageStore)
	api.Post("/upload", uploadHandler.Upload)
}
