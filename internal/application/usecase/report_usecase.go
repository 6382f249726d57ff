package usecase

import (
	"context"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura sobre el inventario.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// LowStock devuelve los productos marcados como bajo stock por la vista
// low_stock_products, ordenados por stock ascendente.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.reports.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// InventorySummary compone los agregados globales y el desglose por categoría.
func (uc *ReportUseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	summary, err := uc.reports.InventorySummary(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.reports.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.CategoryStatDTO, 0, len(breakdown))
	for _, st := range breakdown {
		stats = append(stats, dto.CategoryStatDTO{
			Category:     st.Category,
			ProductCount: st.ProductCount,
			TotalStock:   st.TotalStock,
			Value:        st.CategoryValue,
		})
	}
	return &dto.InventorySummaryResponse{
		Summary: dto.InventorySummaryDTO{
			TotalProducts:    summary.TotalProducts,
			TotalStock:       summary.TotalStock,
			TotalValue:       summary.TotalValue,
			LowStockProducts: summary.LowStockProducts,
			ActiveProducts:   summary.ActiveProducts,
			InactiveProducts: summary.InactiveProducts,
		},
		CategoryStats: stats,
	}, nil
}
