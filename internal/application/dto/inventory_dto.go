package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/logi-core/inventory-service/internal/domain/entity"
)

// Los nombres JSON siguen el contrato camelCase que consumen los clientes
// de logi-core (itemId, warehouseId, movementType, ...).

// RecordMovementRequest body para POST /inventory/movements.
type RecordMovementRequest struct {
	ID            string           `json:"id,omitempty"`
	ItemID        string           `json:"itemId"`
	WarehouseID   string           `json:"warehouseId"`
	MovementType  string           `json:"movementType"`
	Quantity      int64            `json:"quantity"`
	ReferenceType string           `json:"referenceType,omitempty"`
	ReferenceID   string           `json:"referenceId,omitempty"`
	FromLocation  string           `json:"fromLocation,omitempty"`
	ToLocation    string           `json:"toLocation,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	UnitCost      *decimal.Decimal `json:"unitCost,omitempty"`
}

// StockMovementResponse eco del movimiento ya registrado en el ledger.
type StockMovementResponse struct {
	ID            string           `json:"id"`
	ItemID        string           `json:"itemId"`
	WarehouseID   string           `json:"warehouseId"`
	MovementType  string           `json:"movementType"`
	Quantity      int64            `json:"quantity"`
	ReferenceType string           `json:"referenceType,omitempty"`
	ReferenceID   string           `json:"referenceId,omitempty"`
	FromLocation  string           `json:"fromLocation,omitempty"`
	ToLocation    string           `json:"toLocation,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	UnitCost      *decimal.Decimal `json:"unitCost,omitempty"`
	TotalCost     *decimal.Decimal `json:"totalCost,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// FromMovement mapea la entidad a su representación HTTP.
func FromMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		WarehouseID:   m.WarehouseID,
		MovementType:  m.Type,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		FromLocation:  m.FromLocation,
		ToLocation:    m.ToLocation,
		Notes:         m.Notes,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
		CreatedAt:     m.CreatedAt,
	}
}

// InventoryLevelResponse salida de un nivel de inventario.
type InventoryLevelResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"itemId"`
	WarehouseID      string    `json:"warehouseId"`
	Quantity         int64     `json:"quantity"`
	ReservedQuantity int64     `json:"reservedQuantity"`
	ReorderPoint     *int64    `json:"reorderPoint,omitempty"`
	ReorderQuantity  *int64    `json:"reorderQuantity,omitempty"`
	LocationCode     string    `json:"locationCode,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FromLevel mapea la entidad a su representación HTTP.
func FromLevel(l *entity.InventoryLevel) InventoryLevelResponse {
	return InventoryLevelResponse{
		ID:               l.ID,
		ItemID:           l.ItemID,
		WarehouseID:      l.WarehouseID,
		Quantity:         l.Quantity,
		ReservedQuantity: l.ReservedQuantity,
		ReorderPoint:     l.ReorderPoint,
		ReorderQuantity:  l.ReorderQuantity,
		LocationCode:     l.LocationCode,
		UpdatedAt:        l.UpdatedAt,
	}
}

// SetReorderPolicyRequest body para PUT /inventory/levels/reorder.
// Campos nil no modifican el valor actual.
type SetReorderPolicyRequest struct {
	ItemID          string  `json:"itemId"`
	WarehouseID     string  `json:"warehouseId"`
	ReorderPoint    *int64  `json:"reorderPoint,omitempty"`
	ReorderQuantity *int64  `json:"reorderQuantity,omitempty"`
	LocationCode    *string `json:"locationCode,omitempty"`
}

// ScanRequest body para POST /inventory/scan. warehouse_id conserva el
// snake_case histórico de este endpoint.
type ScanRequest struct {
	Barcode     string `json:"barcode"`
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// ScanResponse resultado del lookup por código de barras.
type ScanResponse struct {
	OK        bool          `json:"ok"`
	Barcode   string        `json:"barcode"`
	Warehouse string        `json:"warehouse,omitempty"`
	Item      *ItemResponse `json:"item,omitempty"`
}
