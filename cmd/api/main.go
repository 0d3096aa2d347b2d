package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/logi-core/inventory-service/internal/application/inventory"
	"github.com/logi-core/inventory-service/internal/application/usecase"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
	"github.com/logi-core/inventory-service/internal/infrastructure/memory"
	"github.com/logi-core/inventory-service/internal/infrastructure/postgres"
	httpRouter "github.com/logi-core/inventory-service/internal/interfaces/http"
	"github.com/logi-core/inventory-service/pkg/config"
	"github.com/logi-core/inventory-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		levelRepo     repository.InventoryLevelRepository
		movementRepo  repository.StockMovementRepository
		warehouseRepo repository.WarehouseRepository
		itemRepo      repository.InventoryItemRepository
		txRunner      inventory.TxRunner
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		levelRepo = postgres.NewLevelRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		itemRepo = postgres.NewItemRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default:
		levels := memory.NewLevelRepository()
		movements := memory.NewMovementLedger()
		levelRepo = levels
		movementRepo = movements
		warehouseRepo = memory.NewWarehouseRepository()
		itemRepo = memory.NewItemRepository()
		txRunner = memory.NewTxRunner(levels, movements)
		if cfg.Store.SeedDemo {
			seedDemoWarehouse(warehouseRepo, log)
		}
	}

	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner)
	queryUC := inventory.NewQueryUseCase(levelRepo, movementRepo)
	reorderPolicyUC := inventory.NewReorderPolicyUseCase(txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, levelRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// CORS abierto para desarrollo local, igual que el resto de logi-core
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ApplyMovement: applyMovementUC,
		Query:         queryUC,
		ReorderPolicy: reorderPolicyUC,
		WarehouseUC:   warehouseUC,
		ItemUC:        itemUC,
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

// seedDemoWarehouse siembra la bodega demo del entorno de desarrollo
// (el backend memory arranca vacío en cada proceso).
func seedDemoWarehouse(repo repository.WarehouseRepository, log *logger.Logger) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:       uuid.New().String(),
		Name:     "Main Distribution Center",
		Code:     "WH-001",
		Address:  "123 Logistics Way, City, State 12345",
		Capacity: entity.Capacity{TotalSqft: 50000, UsedSqft: 10000},
		ContactInfo: &entity.ContactInfo{
			Phone:   "+1 555-123-4567",
			Email:   "warehouse@company.com",
			Manager: "John Smith",
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(warehouse); err != nil {
		log.Warn().Err(err).Msg("sembrar bodega demo")
		return
	}
	log.Info().Str("warehouse_id", warehouse.ID).Msg("bodega demo creada")
}
