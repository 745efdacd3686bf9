package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados del tablero de control.
type DashboardResponse struct {
	TotalProducts     int64           `json:"total_products"`
	LowStockItems     int64           `json:"low_stock_items"`
	PendingReceipts   int64           `json:"pending_receipts"`
	PendingDeliveries int64           `json:"pending_deliveries"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
}
