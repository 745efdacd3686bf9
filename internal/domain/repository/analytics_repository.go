package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardMetrics agregados para el tablero de control.
type DashboardMetrics struct {
	TotalProducts     int64
	LowStockItems     int64           // productos con current_stock <= reorder_level
	PendingReceipts   int64           // recepciones en borrador
	PendingDeliveries int64           // entregas en borrador
	TotalStockValue   decimal.Decimal // sum(current_stock * cost_price)
}

// AnalyticsRepository consultas de solo lectura para el tablero.
type AnalyticsRepository interface {
	GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
}
