package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// Fakes en memoria que replican el contrato de los puertos, incluido el
// comportamiento del procedimiento update_stock (guard de stock no-negativo y
// registro atómico del movimiento).

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.products {
		if id != p.ID && existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0)
	for _, p := range r.products {
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(p.Brand), s) &&
				!strings.Contains(strings.ToLower(p.Model), s) {
				continue
			}
		}
		if filter.Category != "" && p.CategoryName != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category // por nombre
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if _, ok := r.categories[c.Name]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.categories[c.Name] = &cp
	return nil
}

func (r *memCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// memMovementRepo emula update_stock: muta el stock del producto y registra el
// movimiento, o falla sin efecto alguno cuando una salida dejaría stock negativo.
type memMovementRepo struct {
	products  *memProductRepo
	movements []*entity.InventoryMovement
	nextID    int
}

func newMemMovementRepo(products *memProductRepo) *memMovementRepo {
	return &memMovementRepo{products: products}
}

func (r *memMovementRepo) ApplyMovement(_ context.Context, productID string, quantity int, movementType, reason string) error {
	p, ok := r.products.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	switch movementType {
	case entity.MovementTypeOut:
		if p.Stock < quantity {
			return domain.ErrInsufficientStock
		}
		p.Stock -= quantity
	case entity.MovementTypeIn:
		p.Stock += quantity
	default:
		return domain.ErrInvalidInput
	}
	r.nextID++
	r.movements = append(r.movements, &entity.InventoryMovement{
		ID:          fmt.Sprintf("mov-%d", r.nextID),
		ProductID:   productID,
		ProductName: p.Name,
		SKU:         p.SKU,
		Quantity:    quantity,
		Type:        movementType,
		Reason:      reason,
	})
	return nil
}

func (r *memMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	list := make([]*entity.InventoryMovement, 0)
	for i := len(r.movements) - 1; i >= 0 && len(list) < limit; i-- {
		m := r.movements[i]
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	return list, nil
}

// memReportRepo calcula los reportes desde los productos en memoria con el mismo
// umbral que la vista low_stock_products de referencia (stock <= 5).
type memReportRepo struct {
	products *memProductRepo
}

func newMemReportRepo(products *memProductRepo) *memReportRepo {
	return &memReportRepo{products: products}
}

func (r *memReportRepo) LowStock(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0)
	for _, p := range r.products.products {
		if p.Stock <= 5 {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Stock < list[j].Stock })
	return list, nil
}

func (r *memReportRepo) InventorySummary(_ context.Context) (*repository.InventorySummary, error) {
	s := repository.InventorySummary{TotalValue: decimal.Zero}
	for _, p := range r.products.products {
		s.TotalProducts++
		s.TotalStock += int64(p.Stock)
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock <= 5 {
			s.LowStockProducts++
		}
		switch p.Status {
		case entity.ProductStatusActive:
			s.ActiveProducts++
		case entity.ProductStatusInactive:
			s.InactiveProducts++
		}
	}
	return &s, nil
}

func (r *memReportRepo) CategoryBreakdown(_ context.Context) ([]repository.CategoryStat, error) {
	byName := make(map[string]*repository.CategoryStat)
	for _, p := range r.products.products {
		if p.CategoryName == "" {
			continue
		}
		st, ok := byName[p.CategoryName]
		if !ok {
			st = &repository.CategoryStat{Category: p.CategoryName, CategoryValue: decimal.Zero}
			byName[p.CategoryName] = st
		}
		st.ProductCount++
		st.TotalStock += int64(p.Stock)
		st.CategoryValue = st.CategoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	stats := make([]repository.CategoryStat, 0, len(byName))
	for _, st := range byName {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].CategoryValue.GreaterThan(stats[j].CategoryValue) })
	return stats, nil
}
