package memory

import (
	"sync"

	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*ItemRepo)(nil)

// ItemRepo registro de ítems en memoria con índices por SKU y código de barras.
type ItemRepo struct {
	mu        sync.RWMutex
	byID      map[string]*entity.InventoryItem
	bySKU     map[string]string // sku -> id
	byBarcode map[string]string // barcode -> id
	order     []string
}

// NewItemRepository construye el registro vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{
		byID:      make(map[string]*entity.InventoryItem),
		bySKU:     make(map[string]string),
		byBarcode: make(map[string]string),
	}
}

// Create persiste un ítem nuevo; SKU repetido retorna domain.ErrDuplicate.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bySKU[item.SKU]; exists {
		return domain.ErrDuplicate
	}
	c := *item
	r.byID[c.ID] = &c
	r.bySKU[c.SKU] = c.ID
	if c.Barcode != "" {
		r.byBarcode[c.Barcode] = c.ID
	}
	r.order = append(r.order, c.ID)
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItem(r.byID[id]), nil
}

// GetBySKU obtiene un ítem por su clave de negocio.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.bySKU[sku]; ok {
		return cloneItem(r.byID[id]), nil
	}
	return nil, nil
}

// GetByBarcode obtiene un ítem por código de barras (lookup de escaneo).
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byBarcode[barcode]; ok {
		return cloneItem(r.byID[id]), nil
	}
	return nil, nil
}

// List devuelve los ítems en orden de creación.
func (r *ItemRepo) List() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, cloneItem(r.byID[id]))
	}
	return list, nil
}

func cloneItem(it *entity.InventoryItem) *entity.InventoryItem {
	if it == nil {
		return nil
	}
	c := *it
	return &c
}
