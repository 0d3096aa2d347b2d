package dto

import "time"

// CreateItemRequest entrada para registrar un ítem.
type CreateItemRequest struct {
	SKU     string `json:"sku" validate:"required,min=1,max=100"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Barcode string `json:"barcode,omitempty"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemListResponse lista de ítems con los filtros aplicados (contrato del
// endpoint /inventory/items de logi-core).
type ItemListResponse struct {
	Items       []ItemResponse `json:"items"`
	WarehouseID string         `json:"warehouseId,omitempty"`
	LowStock    bool           `json:"lowStock"`
}
