package repository

import (
	"context"

	"github.com/anthonyrh/techstore-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para el listado de productos.
// Search busca subcadena (case-insensitive) en name, brand o model;
// Category y Status filtran por igualdad exacta.
type ProductFilter struct {
	Search   string
	Category string
	Status   string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
