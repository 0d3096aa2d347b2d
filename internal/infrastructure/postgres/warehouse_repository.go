package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, code, address, total_sqft, used_sqft,
		contact_phone, contact_email, contact_manager, lat, lng, is_active,
		created_at, updated_at`

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, code, address, total_sqft, used_sqft,
			contact_phone, contact_email, contact_manager, lat, lng, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	var phone, email, manager *string
	if ci := warehouse.ContactInfo; ci != nil {
		phone, email, manager = nullIfEmpty(ci.Phone), nullIfEmpty(ci.Email), nullIfEmpty(ci.Manager)
	}
	var lat, lng *float64
	if loc := warehouse.Location; loc != nil {
		lat, lng = &loc.Lat, &loc.Lng
	}
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, nullIfEmpty(warehouse.Code), nullIfEmpty(warehouse.Address),
		warehouse.Capacity.TotalSqft, warehouse.Capacity.UsedSqft,
		phone, email, manager, lat, lng, warehouse.IsActive,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	w, err := scanWarehouse(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// SetActive cambia el flag de activación (las bodegas nunca se borran).
func (r *WarehouseRepo) SetActive(id string, active bool) error {
	query := `UPDATE warehouses SET is_active = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set warehouse active: %w", err)
	}
	return nil
}

// List devuelve las bodegas en orden de creación; con onlyActive omite las
// desactivadas.
func (r *WarehouseRepo) List(onlyActive bool) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	var code, address, phone, email, manager *string
	var lat, lng *float64
	err := row.Scan(
		&w.ID, &w.Name, &code, &address,
		&w.Capacity.TotalSqft, &w.Capacity.UsedSqft,
		&phone, &email, &manager, &lat, &lng, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Code = deref(code)
	w.Address = deref(address)
	if phone != nil || email != nil || manager != nil {
		w.ContactInfo = &entity.ContactInfo{Phone: deref(phone), Email: deref(email), Manager: deref(manager)}
	}
	if lat != nil && lng != nil {
		w.Location = &entity.GeoPoint{Lat: *lat, Lng: *lng}
	}
	return &w, nil
}
