package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logi-core/inventory-service/internal/application/inventory"
	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testItemID      = "11111111-1111-1111-1111-111111111111"
	testWarehouseID = "22222222-2222-2222-2222-222222222222"
)

// testEngine agrupa el motor completo sobre el backend en memoria.
type testEngine struct {
	apply     *inventory.ApplyMovementUseCase
	query     *inventory.QueryUseCase
	runner    *memory.TxRunner
	levels    *memory.LevelRepo
	movements *memory.MovementLedger
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	levels := memory.NewLevelRepository()
	movements := memory.NewMovementLedger()
	runner := memory.NewTxRunner(levels, movements)
	return &testEngine{
		apply:     inventory.NewApplyMovementUseCase(runner),
		query:     inventory.NewQueryUseCase(levels, movements),
		runner:    runner,
		levels:    levels,
		movements: movements,
	}
}

// mustApply aplica un movimiento que no debe fallar.
func (e *testEngine) mustApply(t *testing.T, movementType string, qty int64) *entity.StockMovement {
	t.Helper()
	m, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ItemID:      testItemID,
		WarehouseID: testWarehouseID,
		Type:        movementType,
		Quantity:    qty,
	})
	require.NoError(t, err, "el movimiento %s de %d no debe fallar", movementType, qty)
	require.NotNil(t, m)
	return m
}

// quantityOf obtiene la cantidad actual del nivel del par de prueba.
func (e *testEngine) quantityOf(t *testing.T) int64 {
	t.Helper()
	level, err := e.levels.Get(testItemID, testWarehouseID)
	require.NoError(t, err)
	require.NotNil(t, level, "el nivel debe existir tras el primer movimiento")
	return level.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del delta por tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: secuencia inbound 10 → outbound 4 → adjustment 100 sobre un par nuevo.
// Cantidades esperadas: 10, 6 y 0 (el ajuste siempre descuenta y el piso es cero).
func TestApplyMovement_SecuenciaDeDeltas(t *testing.T) {
	e := newTestEngine(t)

	e.mustApply(t, entity.MovementTypeInbound, 10)
	assert.Equal(t, int64(10), e.quantityOf(t), "inbound 10 sobre nivel nuevo debe dejar 10")

	e.mustApply(t, entity.MovementTypeOutbound, 4)
	assert.Equal(t, int64(6), e.quantityOf(t), "outbound 4 debe dejar 6")

	e.mustApply(t, entity.MovementTypeAdjustment, 100)
	assert.Equal(t, int64(0), e.quantityOf(t), "adjustment 100 debe quedar en el piso de cero")
}

// Caso 2: return suma igual que inbound; transfer descuenta igual que outbound.
func TestApplyMovement_ReturnSumaTransferResta(t *testing.T) {
	e := newTestEngine(t)

	e.mustApply(t, entity.MovementTypeReturn, 5)
	assert.Equal(t, int64(5), e.quantityOf(t), "return debe sumar stock")

	e.mustApply(t, entity.MovementTypeTransfer, 2)
	assert.Equal(t, int64(3), e.quantityOf(t), "transfer debe descontar stock")
}

// Caso 3: una salida mayor a las existencias se acepta y la cantidad queda en
// cero, nunca negativa.
func TestApplyMovement_PisoEnCero(t *testing.T) {
	e := newTestEngine(t)

	e.mustApply(t, entity.MovementTypeInbound, 3)
	m := e.mustApply(t, entity.MovementTypeOutbound, 50)

	assert.Equal(t, int64(0), e.quantityOf(t), "la cantidad nunca baja de cero")
	// El movimiento queda registrado con su cantidad original, no la recortada.
	assert.Equal(t, int64(50), m.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de materialización perezosa
// ──────────────────────────────────────────────────────────────────────────────

// El primer movimiento sobre un par (ítem, bodega) sin nivel debe crearlo con
// reserved en cero y los identificadores correctos, y debe existir exactamente
// un nivel para el par.
func TestApplyMovement_MaterializaNivelNuevo(t *testing.T) {
	e := newTestEngine(t)

	before, err := e.levels.Get(testItemID, testWarehouseID)
	require.NoError(t, err)
	require.Nil(t, before, "antes del primer movimiento no debe existir el nivel")

	e.mustApply(t, entity.MovementTypeInbound, 7)

	level, err := e.levels.Get(testItemID, testWarehouseID)
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.NotEmpty(t, level.ID, "el nivel materializado recibe un ID propio")
	assert.Equal(t, testItemID, level.ItemID)
	assert.Equal(t, testWarehouseID, level.WarehouseID)
	assert.Equal(t, int64(7), level.Quantity)
	assert.Equal(t, int64(0), level.ReservedQuantity, "reserved arranca en cero")
	assert.Nil(t, level.ReorderPoint, "sin política de reorden al materializar")

	all, err := e.levels.List("")
	require.NoError(t, err)
	assert.Len(t, all, 1, "solo debe existir un nivel por par (ítem, bodega)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación
// ──────────────────────────────────────────────────────────────────────────────

// Todo movimiento inválido retorna ErrInvalidMovement y no toca el estado:
// ni el nivel se materializa ni el ledger crece.
func TestApplyMovement_InvalidosNoTocanEstado(t *testing.T) {
	e := newTestEngine(t)
	negCost := decimal.NewFromInt(-1)

	cases := []struct {
		name  string
		input inventory.MovementInput
	}{
		{"cantidad cero", inventory.MovementInput{
			ItemID: testItemID, WarehouseID: testWarehouseID,
			Type: entity.MovementTypeInbound, Quantity: 0,
		}},
		{"cantidad negativa", inventory.MovementInput{
			ItemID: testItemID, WarehouseID: testWarehouseID,
			Type: entity.MovementTypeInbound, Quantity: -5,
		}},
		{"tipo desconocido", inventory.MovementInput{
			ItemID: testItemID, WarehouseID: testWarehouseID,
			Type: "teleport", Quantity: 1,
		}},
		{"itemId vacío", inventory.MovementInput{
			WarehouseID: testWarehouseID,
			Type:        entity.MovementTypeInbound, Quantity: 1,
		}},
		{"warehouseId vacío", inventory.MovementInput{
			ItemID: testItemID,
			Type:   entity.MovementTypeInbound, Quantity: 1,
		}},
		{"referenceType desconocido", inventory.MovementInput{
			ItemID: testItemID, WarehouseID: testWarehouseID,
			Type: entity.MovementTypeInbound, Quantity: 1,
			ReferenceType: "invoice",
		}},
		{"costo unitario negativo", inventory.MovementInput{
			ItemID: testItemID, WarehouseID: testWarehouseID,
			Type: entity.MovementTypeInbound, Quantity: 1,
			UnitCost: &negCost,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := e.apply.Apply(context.Background(), tc.input)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, domain.ErrInvalidMovement)
		})
	}

	// Sin cambios de estado tras todos los rechazos.
	level, err := e.levels.Get(testItemID, testWarehouseID)
	require.NoError(t, err)
	assert.Nil(t, level, "un movimiento rechazado no debe materializar el nivel")

	history, err := e.movements.List("", "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "un movimiento rechazado no debe entrar al ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ledger y del ID
// ──────────────────────────────────────────────────────────────────────────────

// Caso: ID vacío recibe uno nuevo; ID provisto se conserva.
func TestApplyMovement_AsignacionDeID(t *testing.T) {
	e := newTestEngine(t)

	auto := e.mustApply(t, entity.MovementTypeInbound, 1)
	assert.NotEmpty(t, auto.ID, "sin ID en la entrada se asigna uno al commit")

	given, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ID:          "movimiento-externo-001",
		ItemID:      testItemID,
		WarehouseID: testWarehouseID,
		Type:        entity.MovementTypeInbound,
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "movimiento-externo-001", given.ID, "el ID provisto se conserva")
}

// El movimiento aplicado queda en el ledger tal cual se registró, y mutar la
// copia devuelta por una lectura no altera lo guardado.
func TestApplyMovement_LedgerInmutable(t *testing.T) {
	e := newTestEngine(t)

	committed := e.mustApply(t, entity.MovementTypeInbound, 9)

	read1, err := e.movements.GetByID(committed.ID)
	require.NoError(t, err)
	require.NotNil(t, read1)
	assert.Equal(t, int64(9), read1.Quantity)

	// Mutamos la copia leída; el ledger no debe enterarse.
	read1.Quantity = 999
	read1.Type = entity.MovementTypeOutbound

	read2, err := e.movements.GetByID(committed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), read2.Quantity, "el ledger entrega copias, no referencias")
	assert.Equal(t, entity.MovementTypeInbound, read2.Type)
}

// Caso: costo unitario presente deriva el costo total (unitario × cantidad).
func TestApplyMovement_CostoTotalDerivado(t *testing.T) {
	e := newTestEngine(t)
	unit := decimal.RequireFromString("12.50")

	m, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ItemID:      testItemID,
		WarehouseID: testWarehouseID,
		Type:        entity.MovementTypeInbound,
		Quantity:    4,
		UnitCost:    &unit,
	})
	require.NoError(t, err)
	require.NotNil(t, m.TotalCost)
	assert.True(t, m.TotalCost.Equal(decimal.RequireFromString("50.00")),
		"total = unitario × cantidad, obtuvo %s", m.TotalCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// N movimientos inbound concurrentes de cantidad 1 sobre el mismo par deben
// dejar la cantidad exactamente en N y el ledger con N entradas: ningún
// read-modify-write se pierde.
func TestApplyMovement_ConcurrenciaSinPerdidas(t *testing.T) {
	e := newTestEngine(t)
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := e.apply.Apply(context.Background(), inventory.MovementInput{
				ItemID:      testItemID,
				WarehouseID: testWarehouseID,
				Type:        entity.MovementTypeInbound,
				Quantity:    1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), e.quantityOf(t),
		"ningún incremento concurrente debe perderse")

	history, err := e.movements.List(testItemID, testWarehouseID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, history, n, "cada movimiento aplicado debe quedar en el ledger")
}
