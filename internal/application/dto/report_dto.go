package dto

import "github.com/shopspring/decimal"

// InventorySummaryDTO agregados globales del inventario.
type InventorySummaryDTO struct {
	TotalProducts    int             `json:"total_products"`
	TotalStock       int64           `json:"total_stock"`
	TotalValue       decimal.Decimal `json:"total_value"`
	LowStockProducts int             `json:"low_stock_products"`
	ActiveProducts   int             `json:"active_products"`
	InactiveProducts int             `json:"inactive_products"`
}

// CategoryStatDTO desglose de inventario por categoría.
type CategoryStatDTO struct {
	Category     string          `json:"category"`
	ProductCount int             `json:"product_count"`
	TotalStock   int64           `json:"total_stock"`
	Value        decimal.Decimal `json:"category_value"`
}

// InventorySummaryResponse respuesta de GET /api/reports/inventory-summary.
type InventorySummaryResponse struct {
	Summary       InventorySummaryDTO `json:"summary"`
	CategoryStats []CategoryStatDTO   `json:"categoryStats"`
}
