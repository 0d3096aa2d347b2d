package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// ReorderPolicyUseCase configura la política de reorden de un nivel
// (punto de reorden, cantidad sugerida y código de ubicación).
type ReorderPolicyUseCase struct {
	txRunner TxRunner
}

// NewReorderPolicyUseCase construye el caso de uso.
func NewReorderPolicyUseCase(txRunner TxRunner) *ReorderPolicyUseCase {
	return &ReorderPolicyUseCase{txRunner: txRunner}
}

// ReorderPolicyInput entrada para fijar la política de reorden de un par
// (ítem, bodega). Campos nil dejan el valor actual sin cambios.
type ReorderPolicyInput struct {
	ItemID          string
	WarehouseID     string
	ReorderPoint    *int64
	ReorderQuantity *int64
	LocationCode    *string
}

// Set fija la política sobre el nivel, materializándolo en cero si aún no
// existe (mismo patrón perezoso que el aplicador de movimientos).
func (uc *ReorderPolicyUseCase) Set(ctx context.Context, input ReorderPolicyInput) (*entity.InventoryLevel, error) {
	if input.ItemID == "" || input.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.ReorderPoint != nil && *input.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.ReorderQuantity != nil && *input.ReorderQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.InventoryLevel
	err := uc.txRunner.Run(ctx, input.ItemID, input.WarehouseID, func(
		levelRepo repository.InventoryLevelRepository,
		_ repository.StockMovementRepository,
	) error {
		level, err := levelRepo.GetForUpdate(input.ItemID, input.WarehouseID)
		if err != nil {
			return err
		}
		if level == nil {
			level = &entity.InventoryLevel{
				ID:          uuid.New().String(),
				ItemID:      input.ItemID,
				WarehouseID: input.WarehouseID,
			}
		}
		if input.ReorderPoint != nil {
			v := *input.ReorderPoint
			level.ReorderPoint = &v
		}
		if input.ReorderQuantity != nil {
			v := *input.ReorderQuantity
			level.ReorderQuantity = &v
		}
		if input.LocationCode != nil {
			level.LocationCode = *input.LocationCode
		}
		level.UpdatedAt = time.Now()
		if err := levelRepo.Upsert(level); err != nil {
			return err
		}
		out = level
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
