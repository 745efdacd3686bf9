package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea de un documento en creación.
type DocumentLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateDocumentRequest entrada para crear una recepción o una entrega en borrador.
type CreateDocumentRequest struct {
	Kind         string                `json:"kind" validate:"required,oneof=receipt delivery"`
	Reference    string                `json:"reference" validate:"required,min=1,max=64"`
	Counterparty string                `json:"counterparty" validate:"required,min=1,max=200"`
	WarehouseID  string                `json:"warehouse_id" validate:"required"`
	DocumentDate *time.Time            `json:"document_date"`
	Notes        string                `json:"notes"`
	Lines        []DocumentLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// DocumentLineResponse línea en respuestas.
type DocumentLineResponse struct {
	LineNo    int             `json:"line_no"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// DocumentResponse salida de un documento con sus líneas.
type DocumentResponse struct {
	ID           string                 `json:"id"`
	Kind         string                 `json:"kind"`
	Reference    string                 `json:"reference"`
	Counterparty string                 `json:"counterparty"`
	WarehouseID  string                 `json:"warehouse_id"`
	DocumentDate time.Time              `json:"document_date"`
	Notes        string                 `json:"notes,omitempty"`
	Status       string                 `json:"status"`
	Total        decimal.Decimal        `json:"total"`
	Lines        []DocumentLineResponse `json:"lines"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
