package repository

import (
	"context"

	"github.com/logi-core/inventory-service/internal/domain/entity"
)

// InventoryLevelRepository define el puerto del Level Store: stock actual por
// (ítem, bodega). Devuelve (nil, nil) cuando el nivel no existe; el aplicador
// lo materializa de forma perezosa.
type InventoryLevelRepository interface {
	Get(itemID, warehouseID string) (*entity.InventoryLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE en Postgres;
	// en memoria la exclusión la da el lock por clave del TxRunner).
	GetForUpdate(itemID, warehouseID string) (*entity.InventoryLevel, error)
	Upsert(level *entity.InventoryLevel) error
	// List devuelve los niveles, filtrados por bodega si warehouseID no es vacío.
	// Orden estable para un snapshot dado del store.
	List(warehouseID string) ([]*entity.InventoryLevel, error)
	// ListBelowReorderPoint devuelve los niveles con punto de reorden definido
	// y quantity <= reorderPoint (límite inclusivo). Recalculado en cada llamada.
	ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]*entity.InventoryLevel, error)
}
