package memory

import (
	"context"
	"sync"

	"github.com/logi-core/inventory-service/internal/application/inventory"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones por clave (ítem, bodega): obtiene o crea
// el mutex de la clave y ejecuta fn bajo ese lock. Claves distintas avanzan en
// paralelo; dos movimientos sobre el mismo nivel nunca pierden un update.
type TxRunner struct {
	levels    *LevelRepo
	movements *MovementLedger
	locks     sync.Map // levelKey -> *sync.Mutex
}

// NewTxRunner construye el runner sobre los stores en memoria.
func NewTxRunner(levels *LevelRepo, movements *MovementLedger) *TxRunner {
	return &TxRunner{levels: levels, movements: movements}
}

// Run ejecuta fn con el lock de la clave tomado (get-or-create-then-lock).
func (r *TxRunner) Run(ctx context.Context, itemID, warehouseID string, fn func(
	levelRepo repository.InventoryLevelRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v, _ := r.locks.LoadOrStore(levelKey(itemID, warehouseID), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()
	return fn(r.levels, r.movements)
}
