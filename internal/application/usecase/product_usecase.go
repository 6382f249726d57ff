package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/catalog"
	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo se muta aquí en
// create/update directos; los movimientos de inventario van por InventoryUseCase.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// List lista productos con filtros opcionales (search, category, status), del más reciente al más antiguo.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create crea un nuevo producto. Valida antes de tocar la BD: name, price y stock
// son obligatorios (stock 0 es válido: se comprueba presencia, no truthiness).
// La categoría se resuelve por nombre exacto; sin coincidencia queda sin categoría.
// Si no llega SKU se genera uno determinístico (MARCA-NOM-timestamp).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	categoryID, categoryName, err := uc.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sku := in.SKU
	if sku == "" {
		sku = catalog.GenerateSKU(in.Brand, in.Name, now)
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Price:        *in.Price,
		Stock:        *in.Stock,
		Description:  in.Description,
		Brand:        in.Brand,
		Model:        in.Model,
		SKU:          sku,
		Status:       entity.ProductStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente. Los campos omitidos conservan su valor
// actual (status incluido); una categoría enviada como cadena vacía desasocia.
// Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		categoryID, categoryName, err := uc.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.CategoryName = categoryName
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		product.SKU = *in.SKU
	}
	if in.Status != nil {
		if *in.Status != entity.ProductStatusActive && *in.Status != entity.ProductStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID (hard delete). Propaga domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// resolveCategory busca la categoría por nombre exacto. Si no hay coincidencia el
// producto queda sin categoría; el servicio nunca crea categorías implícitamente.
func (uc *ProductUseCase) resolveCategory(ctx context.Context, name string) (id, resolvedName string, err error) {
	if name == "" {
		return "", "", nil
	}
	category, err := uc.categories.GetByName(ctx, name)
	if err != nil {
		return "", "", err
	}
	if category == nil {
		return "", "", nil
	}
	return category.ID, category.Name, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.CategoryName,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Brand:       p.Brand,
		Model:       p.Model,
		SKU:         p.SKU,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
