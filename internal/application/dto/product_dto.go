package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// El stock inicial siempre es 0: el stock solo lo mueve el ledger.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=64"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	UnitMeasure  string          `json:"unit_of_measure" validate:"required"`
	ReorderLevel int64           `json:"reorder_level" validate:"min=0"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	IsActive     *bool           `json:"is_active"`
}

// UpdateProductRequest entrada para actualizar un producto.
// No incluye current_stock: ese campo es de solo lectura fuera del motor.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	UnitMeasure  *string          `json:"unit_of_measure"`
	ReorderLevel *int64           `json:"reorder_level" validate:"omitempty,min=0"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	IsActive     *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	UnitMeasure  string          `json:"unit_of_measure"`
	CurrentStock int64           `json:"current_stock"`
	ReorderLevel int64           `json:"reorder_level"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	LowStock     bool            `json:"low_stock"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductStockResponse stock cacheado vs. recalculado desde el ledger.
type ProductStockResponse struct {
	ProductID    string `json:"product_id"`
	CurrentStock int64  `json:"current_stock"`
	LedgerStock  int64  `json:"ledger_stock"`
	ReorderLevel int64  `json:"reorder_level"`
	LowStock     bool   `json:"low_stock"`
}
