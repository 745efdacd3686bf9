package ledger

import (
	"context"

	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del motor:
// un Record o una validación de documento entera hace Commit o Rollback
// como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
	) error) error
}
