// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Es el backend por defecto: el estado vive ligado al proceso y se
// descarta al apagarlo. Los stores entregan y guardan copias, de modo que los
// lectores ven siempre un estado pre o post commit, nunca uno intermedio.
package memory

import (
	"context"
	"sync"

	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*LevelRepo)(nil)

// levelKey clave compuesta del Level Store.
func levelKey(itemID, warehouseID string) string {
	return itemID + "|" + warehouseID
}

// LevelRepo Level Store en memoria: un nivel por par (ítem, bodega).
// order conserva el orden de inserción para que los listados sean estables
// dentro de un mismo snapshot del store.
type LevelRepo struct {
	mu    sync.RWMutex
	byKey map[string]*entity.InventoryLevel
	order []string
}

// NewLevelRepository construye el store vacío.
func NewLevelRepository() *LevelRepo {
	return &LevelRepo{byKey: make(map[string]*entity.InventoryLevel)}
}

// Get obtiene el nivel de un ítem en una bodega; (nil, nil) si no existe.
func (r *LevelRepo) Get(itemID, warehouseID string) (*entity.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byKey[levelKey(itemID, warehouseID)].Clone(), nil
}

// GetForUpdate en memoria equivale a Get: la exclusión del read-modify-write
// la garantiza el lock por clave del TxRunner, no el store.
func (r *LevelRepo) GetForUpdate(itemID, warehouseID string) (*entity.InventoryLevel, error) {
	return r.Get(itemID, warehouseID)
}

// Upsert inserta o reemplaza el nivel. Guarda una copia: mutaciones
// posteriores del argumento no afectan el store.
func (r *LevelRepo) Upsert(level *entity.InventoryLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := levelKey(level.ItemID, level.WarehouseID)
	if _, exists := r.byKey[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byKey[key] = level.Clone()
	return nil
}

// List devuelve los niveles en orden de inserción, filtrados por bodega si
// warehouseID no es vacío.
func (r *LevelRepo) List(warehouseID string) ([]*entity.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.InventoryLevel, 0, len(r.order))
	for _, key := range r.order {
		l := r.byKey[key]
		if warehouseID != "" && l.WarehouseID != warehouseID {
			continue
		}
		list = append(list, l.Clone())
	}
	return list, nil
}

// ListBelowReorderPoint evalúa stock bajo contra el estado vigente del store
// en cada llamada (sin caché). El límite es inclusivo.
func (r *LevelRepo) ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]*entity.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.InventoryLevel
	for _, key := range r.order {
		l := r.byKey[key]
		if warehouseID != "" && l.WarehouseID != warehouseID {
			continue
		}
		if l.BelowReorderPoint() {
			list = append(list, l.Clone())
		}
	}
	return list, nil
}
