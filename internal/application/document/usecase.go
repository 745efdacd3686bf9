package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockflow/internal/application/ledger"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// Workflow implementa el ciclo de vida de recepciones y entregas:
// draft -> validated | cancelled (ambos terminales). Validar un documento
// emite un movimiento de ledger por línea dentro de una sola transacción.
type Workflow struct {
	txRunner      ledger.TxRunner
	engine        *ledger.Engine
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewWorkflow construye el flujo de documentos.
func NewWorkflow(
	txRunner ledger.TxRunner,
	engine *ledger.Engine,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *Workflow {
	return &Workflow{
		txRunner:      txRunner,
		engine:        engine,
		docRepo:       docRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// LineInput línea de un documento en creación.
type LineInput struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CreateDraftInput entrada para crear un borrador de recepción o entrega.
type CreateDraftInput struct {
	Kind         string // receipt, delivery
	Reference    string // única por tipo de documento
	Counterparty string // proveedor o cliente
	WarehouseID  string
	DocumentDate time.Time
	Notes        string
	Lines        []LineInput
}

// CreateDraft valida la entrada y persiste el documento con sus líneas en
// estado draft. Un borrador no genera movimientos de ledger.
func (w *Workflow) CreateDraft(ctx context.Context, input CreateDraftInput) (*entity.Document, error) {
	if !entity.ValidDocumentKind(input.Kind) || input.Reference == "" || input.Counterparty == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyLines
	}

	warehouse, err := w.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrUnknownWarehouse
	}
	if !warehouse.IsActive {
		return nil, domain.ErrInactiveEntity
	}

	for _, line := range input.Lines {
		if line.Quantity <= 0 || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidLine
		}
		product, err := w.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidLine
		}
	}

	// La misma referencia puede coexistir entre tipos distintos (una recepción
	// REF-1 y una entrega REF-1); el constraint de BD es por (kind, reference).
	existing, err := w.docRepo.GetByKindAndReference(input.Kind, input.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReference
	}

	now := time.Now()
	date := input.DocumentDate
	if date.IsZero() {
		date = now
	}
	doc := &entity.Document{
		ID:           uuid.New().String(),
		Kind:         input.Kind,
		Reference:    input.Reference,
		Counterparty: input.Counterparty,
		WarehouseID:  input.WarehouseID,
		DocumentDate: date,
		Notes:        input.Notes,
		Status:       entity.DocumentStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i, line := range input.Lines {
		doc.Lines = append(doc.Lines, entity.DocumentLine{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			LineNo:     i + 1,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	// Documento y líneas en una sola transacción.
	err = w.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
		docRepo repository.DocumentRepository,
	) error {
		return docRepo.Create(doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate transiciona draft -> validated emitiendo un movimiento por línea,
// en el orden de las líneas, todo o nada: si cualquier línea falla (por
// ejemplo ErrInsufficientStock en una entrega), ningún movimiento del
// documento queda escrito y el documento permanece en draft.
//
// Dos líneas con el mismo producto se procesan en el orden listado y generan
// dos entradas separadas del ledger, nunca se consolidan.
func (w *Workflow) Validate(ctx context.Context, documentID string) (*entity.Document, error) {
	doc, err := w.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.DocumentStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	// Referencias activas se verifican antes de abrir la transacción,
	// igual que el motor lo hace para movimientos sueltos.
	warehouse, err := w.warehouseRepo.GetByID(doc.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrUnknownWarehouse
	}
	if !warehouse.IsActive {
		return nil, domain.ErrInactiveEntity
	}
	for _, line := range doc.Lines {
		product, err := w.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrUnknownProduct
		}
		if !product.IsActive {
			return nil, domain.ErrInactiveEntity
		}
	}

	now := time.Now()
	err = w.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
	) error {
		for _, line := range doc.Lines {
			delta := line.Quantity
			kind := entity.MovementKindReceipt
			if doc.Kind == entity.DocumentKindDelivery {
				delta = -line.Quantity
				kind = entity.MovementKindDelivery
			}
			input := ledger.RecordInput{
				ProductID:   line.ProductID,
				WarehouseID: doc.WarehouseID,
				Delta:       delta,
				Kind:        kind,
				DocumentID:  doc.ID,
			}
			if _, err := w.engine.ApplyInTx(movRepo, productRepo, input, now); err != nil {
				return err
			}
		}
		rows, err := docRepo.UpdateStatus(doc.ID, entity.DocumentStatusDraft, entity.DocumentStatusValidated)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Otro writer ganó la transición; revertir los movimientos de esta tx.
			return domain.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc.Status = entity.DocumentStatusValidated
	doc.UpdatedAt = now
	return doc, nil
}

// Cancel transiciona draft -> cancelled. Un documento validado no puede
// cancelarse: el dominio no define una regla de reversa y este flujo no la
// inventa (las correcciones se hacen con movimientos de ajuste).
func (w *Workflow) Cancel(ctx context.Context, documentID string) (*entity.Document, error) {
	doc, err := w.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := w.docRepo.UpdateStatus(doc.ID, entity.DocumentStatusDraft, entity.DocumentStatusCancelled)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrInvalidTransition
	}
	doc.Status = entity.DocumentStatusCancelled
	doc.UpdatedAt = time.Now()
	return doc, nil
}

// GetByID obtiene un documento con sus líneas.
func (w *Workflow) GetByID(ctx context.Context, documentID string) (*entity.Document, error) {
	return w.docRepo.GetByID(documentID)
}

// List lista documentos por tipo y estado con paginación.
func (w *Workflow) List(ctx context.Context, kind, status string, limit, offset int) ([]*entity.Document, error) {
	return w.docRepo.List(kind, status, limit, offset)
}
