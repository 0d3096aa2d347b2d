package memory

import (
	"sync"

	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo registro de bodegas en memoria.
type WarehouseRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Warehouse
	order []string
}

// NewWarehouseRepository construye el registro vacío.
func NewWarehouseRepository() *WarehouseRepo {
	return &WarehouseRepo{byID: make(map[string]*entity.Warehouse)}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[warehouse.ID]; !exists {
		r.order = append(r.order, warehouse.ID)
	}
	r.byID[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

// GetByID obtiene una bodega por ID; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneWarehouse(r.byID[id]), nil
}

// SetActive cambia el flag de activación.
func (r *WarehouseRepo) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.byID[id]; ok {
		w.IsActive = active
	}
	return nil
}

// List devuelve las bodegas en orden de creación; con onlyActive omite las
// desactivadas.
func (r *WarehouseRepo) List(onlyActive bool) ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Warehouse, 0, len(r.order))
	for _, id := range r.order {
		w := r.byID[id]
		if onlyActive && !w.IsActive {
			continue
		}
		list = append(list, cloneWarehouse(w))
	}
	return list, nil
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	if w == nil {
		return nil
	}
	c := *w
	if w.ContactInfo != nil {
		v := *w.ContactInfo
		c.ContactInfo = &v
	}
	if w.Location != nil {
		v := *w.Location
		c.Location = &v
	}
	return &c
}
