package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// Engine mantiene el ledger append-only de movimientos y garantiza que el
// stock cacheado del producto sea siempre consistente con él. Toda escritura
// pasa por una transacción con bloqueo de fila (SELECT FOR UPDATE), de modo
// que validaciones concurrentes sobre el mismo producto serializan su efecto.
type Engine struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.StockMovementRepository
}

// NewEngine construye el motor de inventario.
func NewEngine(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.StockMovementRepository,
) *Engine {
	return &Engine{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
	}
}

// RecordInput entrada para registrar un movimiento.
// Delta es la cantidad con signo: positivo entrada, negativo salida.
type RecordInput struct {
	ProductID   string
	WarehouseID string
	Delta       int64
	Kind        string // receipt, delivery, adjustment
	Note        string
	DocumentID  string // documento origen; vacío para ajustes manuales
}

// Record valida referencias, inicia una transacción, bloquea la fila del
// producto, aplica el delta y apendea la entrada al ledger. Devuelve el ID
// del movimiento creado.
//
// Regla de piso: un movimiento delivery nunca puede dejar el stock por debajo
// de cero (ErrInsufficientStock). Los ajustes están exentos: son el primitivo
// de corrección manual y pueden compensar derivas en cualquier dirección.
func (e *Engine) Record(ctx context.Context, input RecordInput) (string, error) {
	if err := e.validateInput(input); err != nil {
		return "", err
	}

	var movementID string
	err := e.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		_ repository.DocumentRepository,
	) error {
		id, err := e.ApplyInTx(movRepo, productRepo, input, time.Now())
		if err != nil {
			return err
		}
		movementID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// validateInput verifica tipo, signo del delta y que producto y bodega
// existan y estén activos. Se ejecuta antes de abrir la transacción
// (fail fast, sin rollback necesario).
func (e *Engine) validateInput(input RecordInput) error {
	if !entity.ValidMovementKind(input.Kind) || input.Delta == 0 {
		return domain.ErrInvalidInput
	}
	switch input.Kind {
	case entity.MovementKindReceipt:
		if input.Delta < 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementKindDelivery:
		if input.Delta > 0 {
			return domain.ErrInvalidInput
		}
	}

	product, err := e.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrUnknownProduct
	}
	if !product.IsActive {
		return domain.ErrInactiveEntity
	}

	warehouse, err := e.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrUnknownWarehouse
	}
	if !warehouse.IsActive {
		return domain.ErrInactiveEntity
	}
	return nil
}

// ApplyInTx aplica un movimiento usando repositorios ya atados a una
// transacción del caller (misma tx que la validación de un documento).
// Bloquea la fila del producto, verifica el piso de stock para delivery,
// actualiza el stock cacheado y apendea la entrada al ledger.
func (e *Engine) ApplyInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	input RecordInput,
	now time.Time,
) (string, error) {
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrUnknownProduct
	}

	newQty := product.CurrentStock + input.Delta
	if input.Kind == entity.MovementKindDelivery && newQty < 0 {
		return "", domain.ErrInsufficientStock
	}

	if err := productRepo.UpdateStock(input.ProductID, newQty); err != nil {
		return "", err
	}

	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		WarehouseID: input.WarehouseID,
		Kind:        input.Kind,
		Quantity:    input.Delta,
		Note:        input.Note,
		DocumentID:  input.DocumentID,
		CreatedAt:   now,
	}
	if err := movRepo.Create(mov); err != nil {
		return "", err
	}
	return mov.ID, nil
}

// CurrentStock devuelve el stock cacheado del producto.
func (e *Engine) CurrentStock(ctx context.Context, productID string) (int64, error) {
	product, err := e.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrUnknownProduct
	}
	return product.CurrentStock, nil
}

// RecomputeStock recalcula el stock desde el ledger (suma con signo de todos
// los deltas). Por invariante debe coincidir con CurrentStock; sirve para
// auditar la proyección cacheada.
func (e *Engine) RecomputeStock(ctx context.Context, productID string) (int64, error) {
	product, err := e.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrUnknownProduct
	}
	return e.movementRepo.SumByProduct(productID)
}

// IsLowStock indica si el stock del producto está en o por debajo de su
// umbral de reorden. Predicado derivado puro, sin efectos.
func (e *Engine) IsLowStock(ctx context.Context, productID string) (bool, error) {
	product, err := e.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrUnknownProduct
	}
	return product.IsLowStock(), nil
}

// StockStatus vista de stock de un producto: proyección cacheada,
// recálculo desde el ledger y umbral de reorden.
type StockStatus struct {
	CurrentStock int64
	LedgerStock  int64
	ReorderLevel int64
	LowStock     bool
}

// StockStatus devuelve el estado de stock completo de un producto.
func (e *Engine) StockStatus(ctx context.Context, productID string) (*StockStatus, error) {
	product, err := e.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrUnknownProduct
	}
	fromLedger, err := e.movementRepo.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &StockStatus{
		CurrentStock: product.CurrentStock,
		LedgerStock:  fromLedger,
		ReorderLevel: product.ReorderLevel,
		LowStock:     product.IsLowStock(),
	}, nil
}

// ListMovements lista entradas del ledger con filtros y paginación.
func (e *Engine) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return e.movementRepo.List(filter)
}
