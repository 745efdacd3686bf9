package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento.
const (
	DocumentKindReceipt  = "receipt"  // recepción de proveedor
	DocumentKindDelivery = "delivery" // entrega a cliente
)

// Estados del ciclo de vida de un documento.
// draft -> validated (terminal) | draft -> cancelled (terminal).
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusValidated = "validated"
	DocumentStatusCancelled = "cancelled"
)

// Document representa una recepción o una entrega. En borrador no tiene
// movimientos asociados; al validarse emite exactamente un movimiento por
// línea, en el orden de las líneas, de forma atómica con el cambio de estado.
// Un documento validado es inmutable.
type Document struct {
	ID           string
	Kind         string // receipt, delivery
	Reference    string // referencia humana, única por tipo de documento
	Counterparty string // proveedor (receipt) o cliente (delivery)
	WarehouseID  string
	DocumentDate time.Time
	Notes        string
	Status       string // draft, validated, cancelled
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Lines        []DocumentLine
}

// DocumentLine es una línea de documento: producto, cantidad positiva y
// precio unitario no negativo. LineNo preserva el orden de captura.
type DocumentLine struct {
	ID         string
	DocumentID string
	LineNo     int
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal
}

// Total devuelve la suma de cantidad × precio unitario de todas las líneas.
func (d *Document) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}

// ValidDocumentKind indica si kind es receipt o delivery.
func ValidDocumentKind(kind string) bool {
	return kind == DocumentKindReceipt || kind == DocumentKindDelivery
}
