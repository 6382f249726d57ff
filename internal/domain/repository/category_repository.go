package repository

import (
	"context"

	"github.com/anthonyrh/techstore-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías son de solo lectura salvo Create; la asociación con productos
// se resuelve por nombre exacto con GetByName.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
