package usecase

import (
	"context"

	"github.com/tu-usuario/stockflow/internal/application/dto"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// DashboardUseCase agrega los indicadores del tablero: total de productos,
// productos bajo umbral de reorden, documentos pendientes y valor del stock.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetMetrics devuelve los agregados del tablero.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardResponse, error) {
	m, err := uc.repo.GetDashboardMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalProducts:     m.TotalProducts,
		LowStockItems:     m.LowStockItems,
		PendingReceipts:   m.PendingReceipts,
		PendingDeliveries: m.PendingDeliveries,
		TotalStockValue:   m.TotalStockValue,
	}, nil
}
