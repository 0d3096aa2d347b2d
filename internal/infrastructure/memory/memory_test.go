package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logi-core/inventory-service/internal/domain"
	"github.com/logi-core/inventory-service/internal/domain/entity"
	"github.com/logi-core/inventory-service/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Level Store: aislamiento de las copias
// ──────────────────────────────────────────────────────────────────────────────

// Mutar el nivel devuelto por el store no altera lo guardado, y mutar el
// argumento tras un Upsert tampoco: el store guarda y entrega copias.
func TestLevelRepo_SnapshotAislado(t *testing.T) {
	repo := memory.NewLevelRepository()
	rp := int64(10)

	original := &entity.InventoryLevel{
		ID:           "lvl-1",
		ItemID:       "item-1",
		WarehouseID:  "wh-1",
		Quantity:     5,
		ReorderPoint: &rp,
	}
	require.NoError(t, repo.Upsert(original))

	// Mutar el argumento después del Upsert no debe verse en el store.
	original.Quantity = 999
	*original.ReorderPoint = 999

	read, err := repo.Get("item-1", "wh-1")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, int64(5), read.Quantity)
	assert.Equal(t, int64(10), *read.ReorderPoint, "los punteros también se copian")

	// Mutar la copia leída tampoco.
	read.Quantity = 777
	again, err := repo.Get("item-1", "wh-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Quantity)
}

// Un par inexistente retorna (nil, nil), no error.
func TestLevelRepo_AusenteEsNilNil(t *testing.T) {
	repo := memory.NewLevelRepository()
	level, err := repo.Get("no-item", "no-wh")
	assert.NoError(t, err)
	assert.Nil(t, level)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger: orden de commit y recorrido
// ──────────────────────────────────────────────────────────────────────────────

// El recorrido del ledger arranca siempre desde el inicio y sale en orden de
// commit; la paginación con offset permite reanudarlo.
func TestMovementLedger_OrdenDeCommit(t *testing.T) {
	ledger := memory.NewMovementLedger()
	for i := 1; i <= 5; i++ {
		require.NoError(t, ledger.Append(&entity.StockMovement{
			ItemID:      "item-1",
			WarehouseID: "wh-1",
			Type:        entity.MovementTypeInbound,
			Quantity:    int64(i),
		}))
	}

	all, err := ledger.List("", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, m := range all {
		assert.Equal(t, int64(i+1), m.Quantity, "posición %d fuera de orden", i)
	}

	// Reanudar con offset: las dos páginas cubren el ledger completo sin
	// repetir ni saltar entradas.
	page1, err := ledger.List("", "", 3, 0)
	require.NoError(t, err)
	page2, err := ledger.List("", "", 3, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.Len(t, page2, 2)
	assert.Equal(t, int64(4), page2[0].Quantity)
}

// Append asigna ID cuando viene vacío y lo deja consultable por GetByID.
func TestMovementLedger_AppendAsignaID(t *testing.T) {
	ledger := memory.NewMovementLedger()
	m := &entity.StockMovement{
		ItemID:      "item-1",
		WarehouseID: "wh-1",
		Type:        entity.MovementTypeInbound,
		Quantity:    1,
	}
	require.NoError(t, ledger.Append(m))
	require.NotEmpty(t, m.ID)

	found, err := ledger.GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, m.ID, found.ID)

	missing, err := ledger.GetByID("no-existe")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de ítems
// ──────────────────────────────────────────────────────────────────────────────

// SKU repetido retorna ErrDuplicate; el código de barras queda indexado.
func TestItemRepo_SKUDuplicadoYBarcode(t *testing.T) {
	repo := memory.NewItemRepository()

	require.NoError(t, repo.Create(&entity.InventoryItem{
		ID: "it-1", SKU: "SKU-001", Name: "Tornillo", Barcode: "750123456789",
	}))

	err := repo.Create(&entity.InventoryItem{
		ID: "it-2", SKU: "SKU-001", Name: "Otro tornillo",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el SKU es clave de negocio única")

	byBarcode, err := repo.GetByBarcode("750123456789")
	require.NoError(t, err)
	require.NotNil(t, byBarcode)
	assert.Equal(t, "it-1", byBarcode.ID)

	bySKU, err := repo.GetBySKU("SKU-001")
	require.NoError(t, err)
	require.NotNil(t, bySKU)
	assert.Equal(t, "Tornillo", bySKU.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de bodegas
// ──────────────────────────────────────────────────────────────────────────────

// SetActive desactiva sin borrar: la bodega sigue consultable por ID pero el
// listado de activas la omite.
func TestWarehouseRepo_DesactivarSinBorrar(t *testing.T) {
	repo := memory.NewWarehouseRepository()
	require.NoError(t, repo.Create(&entity.Warehouse{ID: "wh-1", Name: "Central", IsActive: true}))
	require.NoError(t, repo.Create(&entity.Warehouse{ID: "wh-2", Name: "Norte", IsActive: true}))

	require.NoError(t, repo.SetActive("wh-1", false))

	active, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "wh-2", active[0].ID)

	all, err := repo.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2, "desactivar no elimina el registro")

	w, err := repo.GetByID("wh-1")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.False(t, w.IsActive)
}
