package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow/internal/application/usecase"
)

// DashboardHandler expone los agregados del tablero de control.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Indicadores del tablero
// @Description  Totales de catálogo, productos bajo reorden, documentos pendientes y valor del stock.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
