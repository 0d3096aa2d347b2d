package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/logi-core/inventory-service/internal/application/dto"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas. Colaborador del motor de
// inventario: el aplicador solo conoce warehouseId como string opaco.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega. Activa por defecto salvo indicación contraria.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Capacity != nil {
		warehouse.Capacity = entity.Capacity{TotalSqft: in.Capacity.TotalSqft, UsedSqft: in.Capacity.UsedSqft}
	}
	if in.ContactInfo != nil {
		warehouse.ContactInfo = &entity.ContactInfo{
			Phone:   in.ContactInfo.Phone,
			Email:   in.ContactInfo.Email,
			Manager: in.ContactInfo.Manager,
		}
	}
	if in.Location != nil {
		warehouse.Location = &entity.GeoPoint{Lat: in.Location.Lat, Lng: in.Location.Lng}
	}
	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista las bodegas activas (las desactivadas no se exponen; nunca se
// borran físicamente).
func (uc *WarehouseUseCase) List() ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// SetActive cambia el flag de activación, único campo mutable de la bodega.
func (uc *WarehouseUseCase) SetActive(id string, active bool) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, active)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	out := &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		Address:   w.Address,
		Capacity:  dto.CapacityDTO{TotalSqft: w.Capacity.TotalSqft, UsedSqft: w.Capacity.UsedSqft},
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
	}
	if w.ContactInfo != nil {
		out.ContactInfo = &dto.ContactInfoDTO{
			Phone:   w.ContactInfo.Phone,
			Email:   w.ContactInfo.Email,
			Manager: w.ContactInfo.Manager,
		}
	}
	if w.Location != nil {
		out.Location = &dto.LocationDTO{Lat: w.Location.Lat, Lng: w.Location.Lng}
	}
	return out
}
