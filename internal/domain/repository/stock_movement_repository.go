package repository

import "github.com/logi-core/inventory-service/internal/domain/entity"

// StockMovementRepository define el puerto del ledger de movimientos:
// registro append-only en orden de commit. El ledger es un registrador puro,
// nunca rechaza un movimiento que el aplicador ya validó.
type StockMovementRepository interface {
	// Append anexa el movimiento; asigna ID si viene vacío.
	Append(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos en orden de commit, filtrados por ítem y/o
	// bodega si no son vacíos. limit <= 0 significa sin límite. Cada llamada
	// relee el ledger desde el inicio (secuencia reiniciable).
	List(itemID, warehouseID string, limit, offset int) ([]*entity.StockMovement, error)
}
