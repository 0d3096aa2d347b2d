package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeInbound    = "inbound"    // entrada
	MovementTypeOutbound   = "outbound"   // salida
	MovementTypeTransfer   = "transfer"   // traslado (registrado como salida en la bodega origen)
	MovementTypeAdjustment = "adjustment" // ajuste (siempre resta; ver nota en SignedDelta)
	MovementTypeReturn     = "return"     // devolución (entra)
)

// Tipos de referencia de un movimiento (documento que lo origina).
const (
	ReferenceTypeOrder      = "order"
	ReferenceTypeTransfer   = "transfer"
	ReferenceTypeAdjustment = "adjustment"
	ReferenceTypeReturn     = "return"
)

// StockMovement representa un movimiento de inventario ya registrado en el ledger.
// Es inmutable: una vez anexado nunca se edita ni se borra, solo se agregan nuevos.
type StockMovement struct {
	ID            string
	ItemID        string
	WarehouseID   string
	Type          string // inbound, outbound, transfer, adjustment, return
	Quantity      int64  // siempre positiva como se recibe; el signo lo da el tipo
	ReferenceType string // order, transfer, adjustment, return (opcional)
	ReferenceID   string
	FromLocation  string
	ToLocation    string
	Notes         string
	UnitCost      *decimal.Decimal // costo unitario informativo (opcional)
	TotalCost     *decimal.Decimal // Quantity * UnitCost, calculado al registrar
	CreatedAt     time.Time
}

// ValidMovementType indica si el tipo pertenece al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeInbound, MovementTypeOutbound, MovementTypeTransfer,
		MovementTypeAdjustment, MovementTypeReturn:
		return true
	}
	return false
}

// ValidReferenceType indica si el tipo de referencia es válido. Vacío se permite.
func ValidReferenceType(t string) bool {
	switch t {
	case "", ReferenceTypeOrder, ReferenceTypeTransfer,
		ReferenceTypeAdjustment, ReferenceTypeReturn:
		return true
	}
	return false
}

// SignedDelta devuelve el delta con signo que el movimiento aplica sobre el nivel.
// inbound y return suman; outbound, transfer y adjustment restan.
// Nota: adjustment y transfer se tratan SIEMPRE como resta para mantener
// compatibilidad con el historial existente, aunque un ajuste conceptualmente
// podría ir en ambos sentidos y un traslado necesitaría el registro pareado
// de entrada en la bodega destino. Cambiarlo altera el comportamiento
// observable del servicio.
func (m *StockMovement) SignedDelta() int64 {
	switch m.Type {
	case MovementTypeInbound, MovementTypeReturn:
		return m.Quantity
	default:
		return -m.Quantity
	}
}

// Clone devuelve una copia profunda del movimiento. El ledger entrega y guarda
// copias para garantizar inmutabilidad.
func (m *StockMovement) Clone() *StockMovement {
	if m == nil {
		return nil
	}
	c := *m
	if m.UnitCost != nil {
		v := *m.UnitCost
		c.UnitCost = &v
	}
	if m.TotalCost != nil {
		v := *m.TotalCost
		c.TotalCost = &v
	}
	return &c
}
