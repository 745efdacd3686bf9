package document

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// LineForPDF línea enriquecida con datos del producto para el comprobante.
type LineForPDF struct {
	LineNo      int
	SKU         string
	ProductName string
	UnitMeasure string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// PDFGenerator puerto para generar el comprobante PDF de un documento
// (remisión de entrega o comprobante de recepción).
type PDFGenerator interface {
	GenerateDocumentPDF(
		ctx context.Context,
		doc *entity.Document,
		warehouse *entity.Warehouse,
		lines []LineForPDF,
	) ([]byte, error)
}

// PDFUseCase arma los datos del comprobante y delega la generación.
type PDFUseCase struct {
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	generator     PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		docRepo:       docRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		generator:     generator,
	}
}

// Generate produce el PDF de un documento validado. Los borradores y los
// cancelados no tienen comprobante.
func (uc *PDFUseCase) Generate(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.DocumentStatusValidated {
		return nil, domain.ErrInvalidTransition
	}

	warehouse, err := uc.warehouseRepo.GetByID(doc.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrUnknownWarehouse
	}

	lines := make([]LineForPDF, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrUnknownProduct
		}
		lines = append(lines, LineForPDF{
			LineNo:      l.LineNo,
			SKU:         product.SKU,
			ProductName: product.Name,
			UnitMeasure: product.UnitMeasure,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}
	return uc.generator.GenerateDocumentPDF(ctx, doc, warehouse, lines)
}
