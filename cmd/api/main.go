package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	palletRepo := postgres.NewPalletRepository(pool)
	binRepo := postgres.NewBinRepository(pool)
	skuRepo := postgres.NewSkuRepository(pool)
	binSkuRepo := postgres.NewBinSkuRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	imageStore, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.PublicURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	warehouseUC := usecase.NewWarehouseUseCase(txRunner, warehouseRepo, palletRepo)
	palletUC := usecase.NewPalletUseCase(txRunner, palletRepo, binRepo, warehouseRepo)
	binUC := usecase.NewBinUseCase(txRunner, binRepo, binSkuRepo, palletRepo)
	skuUC := usecase.NewSkuUseCase(txRunner, skuRepo, binSkuRepo)
	ledgerUC := inventory.NewLedgerUseCase(txRunner)
	statsUC := usecase.NewStatsUseCase(warehouseRepo, palletRepo, binRepo, skuRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    httpRouter.MaxUploadSize + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes subidas, servidas como estáticos
	app.Static(cfg.Upload.PublicURL, imageStore.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC: warehouseUC,
		PalletUC:    palletUC,
		BinUC:       binUC,
		SkuUC:       skuUC,
		LedgerUC:    ledgerUC,
		StatsUC:     statsUC,
		ActivityUC:  activityUC,
		ImageStore:  imageStore,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
