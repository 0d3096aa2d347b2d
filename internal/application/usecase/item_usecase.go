package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/logi-core/inventory-service/internal/application/dto"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// ItemUseCase casos de uso para ítems de inventario (colaborador del motor).
// Incluye el lookup por código de barras del endpoint de escaneo; cualquier
// lógica de negocio posterior al escaneo queda fuera de alcance.
type ItemUseCase struct {
	itemRepo  repository.InventoryItemRepository
	levelRepo repository.InventoryLevelRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	itemRepo repository.InventoryItemRepository,
	levelRepo repository.InventoryLevelRepository,
) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, levelRepo: levelRepo}
}

// Create registra un ítem nuevo. SKU duplicado retorna domain.ErrDuplicate.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Barcode:   in.Barcode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista ítems, opcionalmente acotados a los que tienen nivel en la
// bodega indicada y, con lowStock, a los que están bajo punto de reorden.
func (uc *ItemUseCase) List(ctx context.Context, warehouseID string, lowStock bool) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}

	// Sin filtros: todos los ítems registrados.
	if warehouseID == "" && !lowStock {
		return buildItemList(items, warehouseID, lowStock), nil
	}

	var levels []*entity.InventoryLevel
	if lowStock {
		levels, err = uc.levelRepo.ListBelowReorderPoint(ctx, warehouseID)
	} else {
		levels, err = uc.levelRepo.List(warehouseID)
	}
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		wanted[l.ItemID] = struct{}{}
	}
	filtered := items[:0:0]
	for _, it := range items {
		if _, ok := wanted[it.ID]; ok {
			filtered = append(filtered, it)
		}
	}
	return buildItemList(filtered, warehouseID, lowStock), nil
}

// Scan resuelve un ítem por código de barras; domain.ErrNotFound si no existe.
func (uc *ItemUseCase) Scan(in dto.ScanRequest) (*dto.ScanResponse, error) {
	if in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ScanResponse{
		OK:        true,
		Barcode:   in.Barcode,
		Warehouse: in.WarehouseID,
		Item:      toItemResponse(item),
	}, nil
}

func buildItemList(items []*entity.InventoryItem, warehouseID string, lowStock bool) *dto.ItemListResponse {
	out := &dto.ItemListResponse{
		Items:       make([]dto.ItemResponse, 0, len(items)),
		WarehouseID: warehouseID,
		LowStock:    lowStock,
	}
	for _, it := range items {
		out.Items = append(out.Items, *toItemResponse(it))
	}
	return out
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		SKU:       it.SKU,
		Name:      it.Name,
		Barcode:   it.Barcode,
		CreatedAt: it.CreatedAt,
	}
}
