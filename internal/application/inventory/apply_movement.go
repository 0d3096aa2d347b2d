package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// ApplyMovementUseCase es el aplicador de movimientos: valida la solicitud,
// resuelve (o materializa) el nivel de inventario, aplica el delta con piso en
// cero y anexa el movimiento al ledger, todo dentro de la sección crítica por
// clave que provee el TxRunner.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de inventario.
// ID es opcional: si viene vacío se asigna al hacer commit.
// No se verifica que ItemID o WarehouseID existan en sus registros:
// el motor los trata como identificadores opacos (hueco conocido, se
// conserva para no cambiar el comportamiento observable).
type MovementInput struct {
	ID            string
	ItemID        string
	WarehouseID   string
	Type          string
	Quantity      int64
	ReferenceType string
	ReferenceID   string
	FromLocation  string
	ToLocation    string
	Notes         string
	UnitCost      *decimal.Decimal
}

// Apply valida y aplica un movimiento de forma atómica, y devuelve el
// movimiento ya registrado con su ID asignado. Ante un error de validación no
// hay ningún cambio de estado: la validación ocurre antes de tocar el store.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:            input.ID,
		ItemID:        input.ItemID,
		WarehouseID:   input.WarehouseID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		ReferenceType: input.ReferenceType,
		ReferenceID:   input.ReferenceID,
		FromLocation:  input.FromLocation,
		ToLocation:    input.ToLocation,
		Notes:         input.Notes,
		UnitCost:      input.UnitCost,
		CreatedAt:     now,
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if input.UnitCost != nil {
		total := input.UnitCost.Mul(decimal.NewFromInt(input.Quantity))
		movement.TotalCost = &total
	}

	err := uc.txRunner.Run(ctx, input.ItemID, input.WarehouseID, func(
		levelRepo repository.InventoryLevelRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		level, err := levelRepo.GetForUpdate(input.ItemID, input.WarehouseID)
		if err != nil {
			return err
		}
		if level == nil {
			// Materialización perezosa: el primer movimiento sobre el par
			// (ítem, bodega) registra el nivel en cero antes de mutarlo.
			level = &entity.InventoryLevel{
				ID:          uuid.New().String(),
				ItemID:      input.ItemID,
				WarehouseID: input.WarehouseID,
				UpdatedAt:   now,
			}
			if err := levelRepo.Upsert(level); err != nil {
				return err
			}
		}

		// Piso en cero: el stock nunca queda negativo. Una salida que excede
		// las existencias se acepta igual y deja la cantidad en cero; es un
		// tradeoff documentado del modelo, no se rechaza el sobregiro.
		newQty := level.Quantity + movement.SignedDelta()
		if newQty < 0 {
			newQty = 0
		}
		level.Quantity = newQty
		level.UpdatedAt = now
		if err := levelRepo.Upsert(level); err != nil {
			return err
		}

		return movementRepo.Append(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// validate aplica las precondiciones del movimiento. Cualquier incumplimiento
// retorna domain.ErrInvalidMovement; no hay fallas transitorias ni reintentos.
func validate(input MovementInput) error {
	if input.ItemID == "" || input.WarehouseID == "" {
		return domain.ErrInvalidMovement
	}
	if input.Quantity <= 0 {
		return domain.ErrInvalidMovement
	}
	if !entity.ValidMovementType(input.Type) {
		return domain.ErrInvalidMovement
	}
	if !entity.ValidReferenceType(input.ReferenceType) {
		return domain.ErrInvalidMovement
	}
	if input.UnitCost != nil && input.UnitCost.LessThan(decimal.Zero) {
		return domain.ErrInvalidMovement
	}
	return nil
}
