package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementLedger)(nil)

// MovementLedger ledger append-only de movimientos en memoria, en orden de
// commit. Guarda y entrega copias: lo anexado nunca se puede editar desde
// afuera.
type MovementLedger struct {
	mu      sync.RWMutex
	entries []*entity.StockMovement
	byID    map[string]*entity.StockMovement
}

// NewMovementLedger construye el ledger vacío.
func NewMovementLedger() *MovementLedger {
	return &MovementLedger{byID: make(map[string]*entity.StockMovement)}
}

// Append anexa el movimiento al final del ledger; asigna ID si viene vacío.
// Seguro ante appends concurrentes de claves distintas.
func (r *MovementLedger) Append(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	stored := movement.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, stored)
	r.byID[stored.ID] = stored
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *MovementLedger) GetByID(id string) (*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

// List recorre el ledger desde el inicio en orden de commit, con filtros
// opcionales por ítem y bodega. limit <= 0 significa sin límite.
func (r *MovementLedger) List(itemID, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StockMovement
	skipped := 0
	for _, m := range r.entries {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		if warehouseID != "" && m.WarehouseID != warehouseID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		list = append(list, m.Clone())
		if limit > 0 && len(list) >= limit {
			break
		}
	}
	return list, nil
}
