package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, sku, name, barcode, created_at, updated_at`

// Create persiste un ítem nuevo. SKU duplicado retorna domain.ErrDuplicate.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, nullIfEmpty(item.Barcode),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU obtiene un ítem por su clave de negocio.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(query, sku)
}

// GetByBarcode obtiene un ítem por código de barras.
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE barcode = $1`
	return r.scanOne(query, barcode)
}

// List devuelve los ítems en orden de creación.
func (r *ItemRepo) List() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		var barcode *string
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &barcode, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Barcode = deref(barcode)
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var barcode *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.SKU, &it.Name, &barcode, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	it.Barcode = deref(barcode)
	return &it, nil
}
