package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías (crear y listar; el resto del
// ciclo de vida de categorías queda fuera del alcance del servicio).
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// Create crea una nueva categoría. name es obligatorio; un nombre repetido
// propaga domain.ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
