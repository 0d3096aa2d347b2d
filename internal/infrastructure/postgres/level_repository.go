package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*LevelRepo)(nil)

// LevelRepo implementación del Level Store sobre PostgreSQL (usable con pool o tx).
type LevelRepo struct {
	q Querier
}

// NewLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLevelRepository(q Querier) *LevelRepo {
	return &LevelRepo{q: q}
}

const levelColumns = `id, item_id, warehouse_id, quantity, reserved_quantity,
		reorder_point, reorder_quantity, location_code, updated_at`

// Get obtiene el nivel de un ítem en una bodega; (nil, nil) si no existe.
func (r *LevelRepo) Get(itemID, warehouseID string) (*entity.InventoryLevel, error) {
	query := `
		SELECT ` + levelColumns + `
		FROM inventory_levels WHERE item_id = $1 AND warehouse_id = $2`
	return r.scanOne(query, itemID, warehouseID)
}

// GetForUpdate obtiene el nivel y bloquea la fila (SELECT FOR UPDATE).
func (r *LevelRepo) GetForUpdate(itemID, warehouseID string) (*entity.InventoryLevel, error) {
	query := `
		SELECT ` + levelColumns + `
		FROM inventory_levels WHERE item_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(query, itemID, warehouseID)
}

// Upsert inserta o actualiza el nivel (por ítem y bodega).
func (r *LevelRepo) Upsert(level *entity.InventoryLevel) error {
	query := `
		INSERT INTO inventory_levels (id, item_id, warehouse_id, quantity, reserved_quantity,
			reorder_point, reorder_quantity, location_code, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
			reserved_quantity = EXCLUDED.reserved_quantity,
			reorder_point = EXCLUDED.reorder_point,
			reorder_quantity = EXCLUDED.reorder_quantity,
			location_code = EXCLUDED.location_code,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		level.ID, level.ItemID, level.WarehouseID, level.Quantity, level.ReservedQuantity,
		level.ReorderPoint, level.ReorderQuantity, nullIfEmpty(level.LocationCode), level.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory level: %w", err)
	}
	return nil
}

// List devuelve los niveles, filtrados por bodega si warehouseID no es vacío.
// Orden por fecha de creación implícita del id (orden estable por updated_at, id).
func (r *LevelRepo) List(warehouseID string) ([]*entity.InventoryLevel, error) {
	query := `SELECT ` + levelColumns + ` FROM inventory_levels`
	var args []any
	if warehouseID != "" {
		query += ` WHERE warehouse_id = $1`
		args = append(args, warehouseID)
	}
	query += ` ORDER BY updated_at, id`
	return r.scanMany(query, args...)
}

// ListBelowReorderPoint niveles con punto de reorden definido y
// quantity <= reorder_point (límite inclusivo).
func (r *LevelRepo) ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]*entity.InventoryLevel, error) {
	query := `
		SELECT ` + levelColumns + `
		FROM inventory_levels
		WHERE reorder_point IS NOT NULL AND quantity <= reorder_point`
	var args []any
	if warehouseID != "" {
		query += ` AND warehouse_id = $1`
		args = append(args, warehouseID)
	}
	query += ` ORDER BY updated_at, id`
	return r.scanMany(query, args...)
}

func (r *LevelRepo) scanOne(query string, args ...any) (*entity.InventoryLevel, error) {
	var l entity.InventoryLevel
	var locationCode *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.ItemID, &l.WarehouseID, &l.Quantity, &l.ReservedQuantity,
		&l.ReorderPoint, &l.ReorderQuantity, &locationCode, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	if locationCode != nil {
		l.LocationCode = *locationCode
	}
	return &l, nil
}

func (r *LevelRepo) scanMany(query string, args ...any) ([]*entity.InventoryLevel, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		var locationCode *string
		if err := rows.Scan(&l.ID, &l.ItemID, &l.WarehouseID, &l.Quantity, &l.ReservedQuantity,
			&l.ReorderPoint, &l.ReorderQuantity, &locationCode, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		if locationCode != nil {
			l.LocationCode = *locationCode
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
