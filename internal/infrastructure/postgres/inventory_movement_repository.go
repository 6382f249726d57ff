package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto InventoryMovementRepository sobre PostgreSQL.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador de persistencia para movimientos.
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// ApplyMovement delega en el procedimiento almacenado update_stock, que en una sola
// transacción ajusta el stock del producto y registra el movimiento. El procedimiento
// hace RAISE cuando una salida dejaría el stock en negativo; eso se traduce a
// domain.ErrInsufficientStock en lugar de exponerse como error genérico de BD.
func (r *InventoryMovementRepo) ApplyMovement(ctx context.Context, productID string, quantity int, movementType, reason string) error {
	_, err := r.q.Exec(ctx, `CALL update_stock($1, $2, $3, $4)`,
		productID, quantity, movementType, reason,
	)
	if err != nil {
		if isInsufficientStock(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista movimientos con nombre y SKU del producto resueltos, del más reciente
// al más antiguo, opcionalmente filtrados por producto y limitados a filter.Limit filas.
func (r *InventoryMovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT im.id, im.product_id, p.name, p.sku, im.quantity, im.movement_type,
			COALESCE(im.reason, ''), im.created_at
		FROM inventory_movements im
		JOIN products p ON p.id = im.product_id
		WHERE 1=1`)
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		sb.WriteString(fmt.Sprintf(" AND im.product_id = $%d", len(args)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY im.created_at DESC LIMIT $%d", len(args)))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.InventoryMovement, 0)
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.ProductName, &m.SKU, &m.Quantity, &m.Type,
			&m.Reason, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
