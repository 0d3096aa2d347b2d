package inventory

import (
	"context"

	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso al Level Store y al ledger,
// serializada por clave (itemID, warehouseID): dos movimientos concurrentes
// sobre el mismo nivel nunca intercalan su read-modify-write.
// La implementación en memoria usa un lock por clave; la de PostgreSQL abre
// una transacción y se apoya en el bloqueo de fila (SELECT FOR UPDATE).
type TxRunner interface {
	Run(ctx context.Context, itemID, warehouseID string, fn func(
		levelRepo repository.InventoryLevelRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
