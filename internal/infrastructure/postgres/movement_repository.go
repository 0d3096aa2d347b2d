package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger de movimientos sobre PostgreSQL (usable con pool o tx).
// La columna seq (bigserial) fija el orden de commit; las filas nunca se
// actualizan ni se borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, item_id, warehouse_id, movement_type, quantity,
		reference_type, reference_id, from_location, to_location, notes,
		unit_cost, total_cost, created_at`

// Append anexa el movimiento al ledger; asigna ID si viene vacío.
func (r *MovementRepo) Append(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, item_id, warehouse_id, movement_type, quantity,
			reference_type, reference_id, from_location, to_location, notes,
			unit_cost, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.WarehouseID, movement.Type, movement.Quantity,
		nullIfEmpty(movement.ReferenceType), nullIfEmpty(movement.ReferenceID),
		nullIfEmpty(movement.FromLocation), nullIfEmpty(movement.ToLocation),
		nullIfEmpty(movement.Notes), movement.UnitCost, movement.TotalCost, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List devuelve movimientos en orden de commit (seq ascendente), con filtros
// opcionales por ítem y bodega. limit <= 0 significa sin límite.
func (r *MovementRepo) List(itemID, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	var args []any
	pos := 1
	appendCond := func(cond string, val any) {
		if pos == 1 {
			query += " WHERE "
		} else {
			query += " AND "
		}
		query += fmt.Sprintf(cond, pos)
		args = append(args, val)
		pos++
	}
	if itemID != "" {
		appendCond("item_id = $%d", itemID)
	}
	if warehouseID != "" {
		appendCond("warehouse_id = $%d", warehouseID)
	}
	query += " ORDER BY seq"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, limit)
		pos++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", pos)
		args = append(args, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var refType, refID, fromLoc, toLoc, notes *string
	err := row.Scan(
		&m.ID, &m.ItemID, &m.WarehouseID, &m.Type, &m.Quantity,
		&refType, &refID, &fromLoc, &toLoc, &notes,
		&m.UnitCost, &m.TotalCost, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ReferenceType = deref(refType)
	m.ReferenceID = deref(refID)
	m.FromLocation = deref(fromLoc)
	m.ToLocation = deref(toLoc)
	m.Notes = deref(notes)
	return &m, nil
}
