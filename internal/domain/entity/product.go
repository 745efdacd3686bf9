package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// CurrentStock es una proyección derivada del ledger de movimientos: solo el
// motor de inventario la modifica, nunca una edición directa del catálogo.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	UnitMeasure  string          // unidad de medida (ej. "unit", "kg", "box")
	CurrentStock int64           // cantidad disponible, derivada de stock_movements
	ReorderLevel int64           // umbral de reorden (>= 0)
	CostPrice    decimal.Decimal // costo unitario
	SellingPrice decimal.Decimal // precio de venta
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de reorden.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}
