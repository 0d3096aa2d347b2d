package inventory

import (
	"context"

	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// QueryUseCase lecturas del motor: niveles actuales, stock bajo y el ledger.
// Opera siempre contra el estado vigente del store (modelo pull, sin caché).
type QueryUseCase struct {
	levelRepo    repository.InventoryLevelRepository
	movementRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	levelRepo repository.InventoryLevelRepository,
	movementRepo repository.StockMovementRepository,
) *QueryUseCase {
	return &QueryUseCase{levelRepo: levelRepo, movementRepo: movementRepo}
}

// Levels devuelve los niveles de inventario, filtrados por bodega si
// warehouseID no es vacío. Dos llamadas sin movimientos intermedios
// devuelven resultados idénticos.
func (uc *QueryUseCase) Levels(ctx context.Context, warehouseID string) ([]*entity.InventoryLevel, error) {
	return uc.levelRepo.List(warehouseID)
}

// LowStock devuelve los niveles en o bajo su punto de reorden (inclusivo).
// Niveles sin punto de reorden nunca aparecen. Se recalcula en cada llamada.
func (uc *QueryUseCase) LowStock(ctx context.Context, warehouseID string) ([]*entity.InventoryLevel, error) {
	return uc.levelRepo.ListBelowReorderPoint(ctx, warehouseID)
}

// Movements devuelve el historial del ledger en orden de commit.
func (uc *QueryUseCase) Movements(ctx context.Context, itemID, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movementRepo.List(itemID, warehouseID, limit, offset)
}
