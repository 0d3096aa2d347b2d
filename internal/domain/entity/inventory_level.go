package entity

import "time"

// InventoryLevel representa el stock actual de un ítem en una bodega.
// Existe exactamente un nivel por par (ItemID, WarehouseID); se materializa
// de forma perezosa con el primer movimiento. Quantity nunca es negativa.
type InventoryLevel struct {
	ID               string
	ItemID           string
	WarehouseID      string
	Quantity         int64
	ReservedQuantity int64  // informativa; no la muta el motor de movimientos
	ReorderPoint     *int64 // nil = sin política de reorden
	ReorderQuantity  *int64
	LocationCode     string
	UpdatedAt        time.Time
}

// BelowReorderPoint indica si el nivel está en o bajo su punto de reorden.
// El límite es inclusivo: quantity == reorderPoint cuenta como stock bajo.
// Niveles sin punto de reorden nunca se consideran bajos.
func (l *InventoryLevel) BelowReorderPoint() bool {
	return l.ReorderPoint != nil && l.Quantity <= *l.ReorderPoint
}

// Clone devuelve una copia profunda del nivel. El store entrega copias para
// que los lectores vean siempre un estado pre o post commit, nunca intermedio.
func (l *InventoryLevel) Clone() *InventoryLevel {
	if l == nil {
		return nil
	}
	c := *l
	if l.ReorderPoint != nil {
		v := *l.ReorderPoint
		c.ReorderPoint = &v
	}
	if l.ReorderQuantity != nil {
		v := *l.ReorderQuantity
		c.ReorderQuantity = &v
	}
	return &c
}
