package usecase

import (
	"time"

	"github.com/gocarina/gocsv"
	"github.com/tu-usuario/stockflow/internal/application/dto"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// MovementExportUseCase exporta el historial de movimientos a CSV para
// respaldo y conciliación fuera del sistema.
type MovementExportUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementExportUseCase construye el caso de uso.
func NewMovementExportUseCase(repo repository.StockMovementRepository) *MovementExportUseCase {
	return &MovementExportUseCase{repo: repo}
}

// ExportCSV serializa los movimientos que cumplen el filtro a CSV.
func (uc *MovementExportUseCase) ExportCSV(filter repository.MovementFilter) ([]byte, error) {
	movements, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.MovementCSVRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, toCSVRow(m))
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func toCSVRow(m *entity.StockMovement) dto.MovementCSVRow {
	return dto.MovementCSVRow{
		ID:          m.ID,
		Date:        m.CreatedAt.Format(time.RFC3339),
		Kind:        m.Kind,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Quantity:    m.Quantity,
		DocumentID:  m.DocumentID,
		Note:        m.Note,
	}
}
