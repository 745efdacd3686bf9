package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow/internal/application/dto"
	"github.com/tu-usuario/stockflow/internal/application/ledger"
	"github.com/tu-usuario/stockflow/internal/application/usecase"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del ledger: ajustes manuales,
// historial de movimientos y consulta de stock.
type InventoryHandler struct {
	engine *ledger.Engine
	export *usecase.MovementExportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *ledger.Engine, export *usecase.MovementExportUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, export: export}
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste manual de stock
// @Description  Primitivo de corrección: delta con signo, exento del piso de cero.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdjustmentRequest  true  "product_id, warehouse_id, delta, note"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movementID, err := h.engine.Record(c.Context(), ledger.RecordInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Delta:       in.Delta,
		Kind:        entity.MovementKindAdjustment,
		Note:        in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": movementID})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Description  Con format=csv devuelve el historial como archivo CSV.
// @Tags         inventory
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        from          query  string  false  "Fecha inicial (YYYY-MM-DD o RFC3339)"
// @Param        to            query  string  false  "Fecha final (YYYY-MM-DD o RFC3339)"
// @Param        format        query  string  false  "json (default) o csv"
// @Param        limit         query  int     false  "Límite"   default(50)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	filter := repository.MovementFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
	}

	if c.Query("format") == "csv" {
		out, err := h.export.ExportCSV(filter)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_movements.csv"`)
		return c.Send(out)
	}

	movements, err := h.engine.ListMovements(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			Kind:        m.Kind,
			Quantity:    m.Quantity,
			Note:        m.Note,
			DocumentID:  m.DocumentID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetStock godoc
// @Summary      Stock de un producto
// @Description  Devuelve el stock cacheado y el recalculado desde el ledger; por invariante deben coincidir.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	status, err := h.engine.StockStatus(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductStockResponse{
		ProductID:    productID,
		CurrentStock: status.CurrentStock,
		LedgerStock:  status.LedgerStock,
		ReorderLevel: status.ReorderLevel,
		LowStock:     status.LowStock,
	})
}

// parseDateQuery acepta YYYY-MM-DD o RFC3339; vacío devuelve nil.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
