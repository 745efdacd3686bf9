package dto

import "time"

// RegisterAdjustmentRequest entrada para registrar un ajuste manual de stock.
// Delta con signo: positivo suma, negativo resta. Los ajustes están exentos
// del piso de cero.
type RegisterAdjustmentRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Delta       int64  `json:"delta" validate:"required"`
	Note        string `json:"note"`
}

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Kind        string    `json:"kind"`
	Quantity    int64     `json:"quantity"`
	Note        string    `json:"note,omitempty"`
	DocumentID  string    `json:"document_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementCSVRow fila para exportar el historial de movimientos a CSV.
type MovementCSVRow struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Kind        string `csv:"kind"`
	ProductID   string `csv:"product_id"`
	WarehouseID string `csv:"warehouse_id"`
	Quantity    int64  `csv:"quantity"`
	DocumentID  string `csv:"document_id"`
	Note        string `csv:"note"`
}
