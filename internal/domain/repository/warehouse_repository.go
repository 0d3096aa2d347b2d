package repository

import "github.com/logi-core/inventory-service/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Las bodegas nunca se borran físicamente; solo se desactivan.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	// SetActive cambia el flag de activación (único campo mutable).
	SetActive(id string, active bool) error
	// List devuelve las bodegas; con onlyActive filtra las desactivadas.
	List(onlyActive bool) ([]*entity.Warehouse, error)
}
