package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anthonyrh/techstore-api/internal/domain/entity"
)

// InventorySummary agregados globales del inventario.
// TotalValue = Σ precio × stock sobre todos los productos al momento de la consulta.
type InventorySummary struct {
	TotalProducts    int
	TotalStock       int64
	TotalValue       decimal.Decimal
	LowStockProducts int
	ActiveProducts   int
	InactiveProducts int
}

// CategoryStat desglose de inventario por categoría.
type CategoryStat struct {
	Category      string
	ProductCount  int
	TotalStock    int64
	CategoryValue decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de inventario.
// El umbral de bajo stock lo define la vista low_stock_products (colaborador externo),
// no la aplicación.
type ReportRepository interface {
	LowStock(ctx context.Context) ([]*entity.Product, error)
	InventorySummary(ctx context.Context) (*InventorySummary, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryStat, error)
}
