package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/logi-core/inventory-service/internal/application/inventory"
	"github.com/logi-core/inventory-service/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ApplyMovement *inventory.ApplyMovementUseCase
	Query         *inventory.QueryUseCase
	ReorderPolicy *inventory.ReorderPolicyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ItemUC        *usecase.ItemUseCase
}

// Router registra las rutas de la API. Las rutas conservan los paths del
// servicio original de logi-core (sin prefijo /api).
func Router(app *fiber.App, deps RouterDeps) {
	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	app.Get("/warehouses", warehouseHandler.List)
	app.Post("/warehouses", warehouseHandler.Create)
	app.Get("/warehouses/:id", warehouseHandler.GetByID)
	app.Patch("/warehouses/:id/active", warehouseHandler.SetActive)

	// Inventario: motor de movimientos y consultas
	inv := app.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ApplyMovement, deps.Query, deps.ReorderPolicy)
	inv.Post("/movements", inventoryHandler.RecordMovement)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/levels", inventoryHandler.ListLevels)
	inv.Put("/levels/reorder", inventoryHandler.SetReorderPolicy)
	inv.Get("/low-stock", inventoryHandler.ListLowStock)

	// Ítems y escaneo
	itemHandler := NewItemHandler(deps.ItemUC)
	inv.Get("/items", itemHandler.List)
	inv.Post("/items", itemHandler.Create)
	inv.Post("/scan", itemHandler.Scan)
}
