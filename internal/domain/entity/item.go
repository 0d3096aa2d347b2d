package entity

import "time"

// InventoryItem representa un ítem (SKU) almacenable. Su ciclo de vida es
// colaborador del motor: los movimientos solo referencian ItemID como string
// opaco, sin verificación de integridad referencial.
type InventoryItem struct {
	ID        string
	SKU       string // clave de negocio única
	Name      string
	Barcode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
