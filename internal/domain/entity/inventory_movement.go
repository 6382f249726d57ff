package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// InventoryMovement representa un movimiento de stock (entrada o salida) con su motivo.
// Es un registro de auditoría append-only: el servicio nunca lo actualiza ni lo elimina.
// ProductName y SKU se resuelven por JOIN en los listados.
type InventoryMovement struct {
	ID          string
	ProductID   string
	ProductName string
	SKU         string
	Quantity    int // siempre positivo; el signo lo da Type
	Type        string
	Reason      string
	CreatedAt   time.Time
}
