package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementKindReceipt    = "receipt"    // entrada por recepción
	MovementKindDelivery   = "delivery"   // salida por entrega
	MovementKindAdjustment = "adjustment" // ajuste manual (corrección)
)

// StockMovement es una entrada inmutable del ledger de inventario.
// Quantity es el delta con signo: positivo entrada, negativo salida.
// Una vez escrito nunca se modifica ni se borra; las correcciones se hacen
// con movimientos de ajuste compensatorios.
type StockMovement struct {
	ID          string
	ProductID   string
	WarehouseID string
	Kind        string // receipt, delivery, adjustment
	Quantity    int64  // delta con signo
	Note        string
	DocumentID  string // documento origen; vacío para ajustes manuales
	CreatedAt   time.Time
}

// ValidMovementKind indica si kind es uno de los tipos soportados.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementKindReceipt, MovementKindDelivery, MovementKindAdjustment:
		return true
	}
	return false
}
