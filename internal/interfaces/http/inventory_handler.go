package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/logi-core/inventory-service/internal/application/dto"
	"github.com/logi-core/inventory-service/internal/application/inventory"
	"github.com/logi-core/inventory-service/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del motor de inventario:
// registro de movimientos, niveles, stock bajo y ledger.
type InventoryHandler struct {
	apply   *inventory.ApplyMovementUseCase
	query   *inventory.QueryUseCase
	reorder *inventory.ReorderPolicyUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	apply *inventory.ApplyMovementUseCase,
	query *inventory.QueryUseCase,
	reorder *inventory.ReorderPolicyUseCase,
) *InventoryHandler {
	return &InventoryHandler{apply: apply, query: query, reorder: reorder}
}

// RecordMovement registra un movimiento y devuelve el movimiento ya aplicado,
// con el ID asignado. POST /inventory/movements.
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.apply.Apply(c.Context(), inventory.MovementInput{
		ID:            in.ID,
		ItemID:        in.ItemID,
		WarehouseID:   in.WarehouseID,
		Type:          in.MovementType,
		Quantity:      in.Quantity,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		FromLocation:  in.FromLocation,
		ToLocation:    in.ToLocation,
		Notes:         in.Notes,
		UnitCost:      in.UnitCost,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMovement) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT", Message: "movimiento inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(movement))
}

// ListLevels devuelve los niveles actuales. GET /inventory/levels?warehouseId=
func (h *InventoryHandler) ListLevels(c *fiber.Ctx) error {
	levels, err := h.query.Levels(c.Context(), c.Query("warehouseId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.FromLevel(l))
	}
	return c.JSON(out)
}

// ListLowStock devuelve los niveles en o bajo punto de reorden.
// GET /inventory/low-stock?warehouseId=
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	levels, err := h.query.LowStock(c.Context(), c.Query("warehouseId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.FromLevel(l))
	}
	return c.JSON(out)
}

// ListMovements devuelve el ledger en orden de commit.
// GET /inventory/movements?itemId=&warehouseId=&limit=&offset=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := h.query.Movements(c.Context(), c.Query("itemId"), c.Query("warehouseId"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.FromMovement(m))
	}
	return c.JSON(out)
}

// SetReorderPolicy fija punto de reorden, cantidad sugerida y ubicación de un
// nivel. PUT /inventory/levels/reorder.
func (h *InventoryHandler) SetReorderPolicy(c *fiber.Ctx) error {
	var in dto.SetReorderPolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	level, err := h.reorder.Set(c.Context(), inventory.ReorderPolicyInput{
		ItemID:          in.ItemID,
		WarehouseID:     in.WarehouseID,
		ReorderPoint:    in.ReorderPoint,
		ReorderQuantity: in.ReorderQuantity,
		LocationCode:    in.LocationCode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromLevel(level))
}
