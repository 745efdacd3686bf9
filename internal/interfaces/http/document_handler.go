package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	appdocument "github.com/tu-usuario/stockflow/internal/application/document"
	"github.com/tu-usuario/stockflow/internal/application/dto"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
)

// DocumentHandler maneja las peticiones HTTP del ciclo de vida documental:
// recepciones y entregas con flujo draft -> validated | cancelled.
type DocumentHandler struct {
	workflow *appdocument.Workflow
	pdf      *appdocument.PDFUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(workflow *appdocument.Workflow, pdf *appdocument.PDFUseCase) *DocumentHandler {
	return &DocumentHandler{workflow: workflow, pdf: pdf}
}

// Create godoc
// @Summary      Crear documento en borrador
// @Description  Crea una recepción o entrega con sus líneas. Un borrador no mueve stock.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Documento con líneas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]appdocument.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, appdocument.LineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	var date time.Time
	if in.DocumentDate != nil {
		date = *in.DocumentDate
	}
	doc, err := h.workflow.CreateDraft(c.Context(), appdocument.CreateDraftInput{
		Kind:         in.Kind,
		Reference:    in.Reference,
		Counterparty: in.Counterparty,
		WarehouseID:  in.WarehouseID,
		DocumentDate: date,
		Notes:        in.Notes,
		Lines:        lines,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Param        kind    query  string  false  "receipt o delivery"
// @Param        status  query  string  false  "draft, validated o cancelled"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	docs, err := h.workflow.List(c.Context(), c.Query("kind"), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, toDocumentResponse(d))
	}
	return c.JSON(dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         documents
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.workflow.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	}
	return c.JSON(toDocumentResponse(doc))
}

// Validate godoc
// @Summary      Validar documento
// @Description  Transiciona draft -> validated emitiendo un movimiento por línea; todo o nada.
// @Tags         documents
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/validate [post]
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	doc, err := h.workflow.Validate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// Cancel godoc
// @Summary      Cancelar documento
// @Description  Transiciona draft -> cancelled; un documento validado no se puede cancelar.
// @Tags         documents
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/cancel [post]
func (h *DocumentHandler) Cancel(c *fiber.Ctx) error {
	doc, err := h.workflow.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// GetPDF godoc
// @Summary      Descargar comprobante PDF
// @Description  Solo documentos validados tienen comprobante.
// @Tags         documents
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/pdf [get]
func (h *DocumentHandler) GetPDF(c *fiber.Ctx) error {
	out, err := h.pdf.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="documento_`+c.Params("id")+`.pdf"`)
	return c.Send(out)
}

func toDocumentResponse(doc *entity.Document) dto.DocumentResponse {
	lines := make([]dto.DocumentLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, dto.DocumentLineResponse{
			LineNo:    l.LineNo,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}
	return dto.DocumentResponse{
		ID:           doc.ID,
		Kind:         doc.Kind,
		Reference:    doc.Reference,
		Counterparty: doc.Counterparty,
		WarehouseID:  doc.WarehouseID,
		DocumentDate: doc.DocumentDate,
		Notes:        doc.Notes,
		Status:       doc.Status,
		Total:        doc.Total(),
		Lines:        lines,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
