package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste el documento y sus líneas. El constraint único
// (kind, reference) respalda ErrDuplicateReference frente a carreras.
func (r *DocumentRepo) Create(document *entity.Document) error {
	query := `
		INSERT INTO documents (id, kind, reference, counterparty, warehouse_id, document_date, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		document.ID, document.Kind, document.Reference, document.Counterparty,
		document.WarehouseID, document.DocumentDate, document.Notes, document.Status,
		document.CreatedAt, document.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert document: %w", err)
	}
	for _, line := range document.Lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO document_lines (id, document_id, line_no, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, line.DocumentID, line.LineNo, line.ProductID, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un documento con sus líneas en orden de captura.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, kind, reference, counterparty, warehouse_id, document_date, notes, status, created_at, updated_at
		FROM documents WHERE id = $1`
	doc, err := r.scanOne(r.q.QueryRow(context.Background(), query, id), "get document")
	if err != nil || doc == nil {
		return doc, err
	}
	if err := r.loadLines(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetByKindAndReference obtiene un documento por tipo y referencia (sin líneas).
func (r *DocumentRepo) GetByKindAndReference(kind, reference string) (*entity.Document, error) {
	query := `
		SELECT id, kind, reference, counterparty, warehouse_id, document_date, notes, status, created_at, updated_at
		FROM documents WHERE kind = $1 AND reference = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, kind, reference), "get document by reference")
}

// UpdateStatus cambia el estado solo si el actual coincide con fromStatus.
// El WHERE sobre el estado actual hace la transición atómica frente a
// validaciones o cancelaciones concurrentes.
func (r *DocumentRepo) UpdateStatus(id, fromStatus, toStatus string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE documents SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, fromStatus, toStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("update document status: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List lista documentos por tipo y estado (filtros opcionales), más recientes primero.
func (r *DocumentRepo) List(kind, status string, limit, offset int) ([]*entity.Document, error) {
	query := `
		SELECT id, kind, reference, counterparty, warehouse_id, document_date, notes, status, created_at, updated_at
		FROM documents
		WHERE ($1 = '' OR kind = $1) AND ($2 = '' OR status = $2)
		ORDER BY document_date DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, kind, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		if err := r.loadLines(d); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *DocumentRepo) loadLines(doc *entity.Document) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, document_id, line_no, product_id, quantity, unit_price
		FROM document_lines WHERE document_id = $1 ORDER BY line_no`,
		doc.ID,
	)
	if err != nil {
		return fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.LineNo, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return fmt.Errorf("scan document line: %w", err)
		}
		doc.Lines = append(doc.Lines, l)
	}
	return rows.Err()
}

func (r *DocumentRepo) scanOne(row pgx.Row, op string) (*entity.Document, error) {
	var d entity.Document
	if err := scanDocument(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}

func scanDocument(row pgx.Row, d *entity.Document) error {
	return row.Scan(
		&d.ID, &d.Kind, &d.Reference, &d.Counterparty, &d.WarehouseID,
		&d.DocumentDate, &d.Notes, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
}
