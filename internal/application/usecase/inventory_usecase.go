package usecase

import (
	"context"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// InventoryUseCase registra movimientos de stock y lista el historial.
// La aritmética de stock y el guard de no-negativo viven en el procedimiento
// update_stock de la BD; aquí solo se valida la entrada y se traduce el resultado.
type InventoryUseCase struct {
	products  repository.ProductRepository
	movements repository.InventoryMovementRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(products repository.ProductRepository, movements repository.InventoryMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{products: products, movements: movements}
}

// RegisterMovement aplica un movimiento de stock (in/out) sobre un producto y
// devuelve el producto ya actualizado. quantity y movementType son obligatorios;
// una salida que dejaría stock negativo propaga domain.ErrInsufficientStock sin
// aplicar cambio alguno (el procedimiento es atómico).
func (uc *InventoryUseCase) RegisterMovement(ctx context.Context, productID string, in dto.StockMovementRequest) (*dto.ProductResponse, error) {
	if in.Quantity == nil || in.MovementType == "" {
		return nil, domain.ErrInvalidInput
	}
	if *in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MovementType != entity.MovementTypeIn && in.MovementType != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.movements.ApplyMovement(ctx, productID, *in.Quantity, in.MovementType, in.Reason); err != nil {
		return nil, err
	}

	// Releer: el stock final lo fijó el procedimiento, no este proceso.
	updated, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(updated), nil
}

// ListMovements lista movimientos (más recientes primero) con producto resuelto,
// opcionalmente filtrados por producto y limitados a filter.Limit filas (100 por defecto).
func (uc *InventoryUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	list, err := uc.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			ProductName:  m.ProductName,
			SKU:          m.SKU,
			Quantity:     m.Quantity,
			MovementType: m.Type,
			Reason:       m.Reason,
			CreatedAt:    m.CreatedAt,
		})
	}
	return items, nil
}
