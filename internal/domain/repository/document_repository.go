package repository

import "github.com/tu-usuario/stockflow/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para documentos
// (recepciones y entregas) con sus líneas.
type DocumentRepository interface {
	// Create persiste el documento y sus líneas. La unicidad de
	// (kind, reference) la respalda un constraint de BD.
	Create(document *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	GetByKindAndReference(kind, reference string) (*entity.Document, error)
	// UpdateStatus cambia el estado solo si el actual coincide con fromStatus;
	// devuelve cuántas filas cambió (0 = transición perdida contra otro writer).
	UpdateStatus(id, fromStatus, toStatus string) (int64, error)
	List(kind, status string, limit, offset int) ([]*entity.Document, error)
}
