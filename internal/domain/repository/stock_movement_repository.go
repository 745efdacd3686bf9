package repository

import (
	"time"

	"github.com/tu-usuario/stockflow/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos del ledger.
type MovementFilter struct {
	ProductID   string
	WarehouseID string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos (DIP). El ledger es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// SumByProduct recalcula el stock desde el ledger: suma con signo de todos
	// los deltas del producto. Debe coincidir siempre con Product.CurrentStock.
	SumByProduct(productID string) (int64, error)
}
