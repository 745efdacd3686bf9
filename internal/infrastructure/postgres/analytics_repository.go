package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero de control.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardMetrics calcula los agregados del tablero en una sola consulta:
// total de productos, productos en o bajo su umbral de reorden, documentos en
// borrador por tipo y valor del inventario (stock × costo unitario).
func (r *AnalyticsRepo) GetDashboardMetrics(ctx context.Context) (*repository.DashboardMetrics, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)                                                        AS total_products,
	    (SELECT COUNT(*) FROM products WHERE current_stock <= reorder_level)                   AS low_stock_items,
	    (SELECT COUNT(*) FROM documents WHERE kind = 'receipt'  AND status = 'draft')          AS pending_receipts,
	    (SELECT COUNT(*) FROM documents WHERE kind = 'delivery' AND status = 'draft')          AS pending_deliveries,
	    (SELECT COALESCE(SUM(current_stock * cost_price), 0) FROM products)                    AS total_stock_value`

	var m repository.DashboardMetrics
	err := r.pool.QueryRow(ctx, query).Scan(
		&m.TotalProducts, &m.LowStockItems, &m.PendingReceipts, &m.PendingDeliveries, &m.TotalStockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}
	return &m, nil
}
