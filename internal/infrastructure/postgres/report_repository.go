package postgres

import (
	"context"
	"fmt"

	"github.com/anthonyrh/techstore-api/internal/domain/entity"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de inventario.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStock lee la vista low_stock_products ordenada por stock ascendente.
// El umbral de bajo stock lo define la vista, no la aplicación.
func (r *ReportRepo) LowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(category_name, ''), price, stock, sku, status
		FROM low_stock_products
		ORDER BY stock ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report low stock: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryName, &p.Price, &p.Stock, &p.SKU, &p.Status); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// InventorySummary agrega totales del catálogo en una sola consulta.
// El conteo de bajo stock usa la misma vista que LowStock para que ambos
// reportes nunca difieran en el umbral.
func (r *ReportRepo) InventorySummary(ctx context.Context) (*repository.InventorySummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                         AS total_products,
	    COALESCE(SUM(stock), 0)                          AS total_stock,
	    COALESCE(SUM(price * stock), 0)                  AS total_value,
	    (SELECT COUNT(*) FROM low_stock_products)        AS low_stock_products,
	    COUNT(*) FILTER (WHERE status = 'active')        AS active_products,
	    COUNT(*) FILTER (WHERE status = 'inactive')      AS inactive_products
	FROM products`

	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.TotalStock, &s.TotalValue,
		&s.LowStockProducts, &s.ActiveProducts, &s.InactiveProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("report inventory summary: %w", err)
	}
	return &s, nil
}

// CategoryBreakdown desglosa conteo, stock y valor por categoría, ordenado por valor descendente.
func (r *ReportRepo) CategoryBreakdown(ctx context.Context) ([]repository.CategoryStat, error) {
	const query = `
	SELECT
	    c.name                                  AS category,
	    COUNT(p.id)                             AS product_count,
	    COALESCE(SUM(p.stock), 0)               AS total_stock,
	    COALESCE(SUM(p.price * p.stock), 0)     AS category_value
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY category_value DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report category breakdown: %w", err)
	}
	defer rows.Close()

	stats := make([]repository.CategoryStat, 0)
	for rows.Next() {
		var st repository.CategoryStat
		if err := rows.Scan(&st.Category, &st.ProductCount, &st.TotalStock, &st.CategoryValue); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
