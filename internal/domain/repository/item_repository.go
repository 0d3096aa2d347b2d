package repository

import "github.com/logi-core/inventory-service/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para ítems (DIP).
type InventoryItemRepository interface {
	// Create persiste un ítem nuevo; SKU duplicado retorna domain.ErrDuplicate.
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	// GetByBarcode busca por código de barras (lookup del endpoint de escaneo).
	GetByBarcode(barcode string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
}
