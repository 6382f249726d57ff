package repository

import (
	"context"

	"github.com/anthonyrh/techstore-api/internal/domain/entity"
)

// MovementFilter filtros para el listado de movimientos.
type MovementFilter struct {
	ProductID string
	Limit     int
}

// InventoryMovementRepository define el puerto de persistencia para movimientos de stock.
// ApplyMovement delega en el procedimiento almacenado update_stock, que ajusta el stock
// y registra el movimiento en una sola transacción; el guard de stock no-negativo vive ahí.
type InventoryMovementRepository interface {
	ApplyMovement(ctx context.Context, productID string, quantity int, movementType, reason string) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.InventoryMovement, error)
}
