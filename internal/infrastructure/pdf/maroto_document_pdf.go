// Package pdf genera el comprobante imprimible de un documento validado:
// remisión de entrega o comprobante de recepción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento + Referencia │ Fecha              │
//	│  ───────────────────────────────────────────────────────── │
//	│  Contraparte (proveedor o cliente) / Bodega                 │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLA: Línea | SKU | Producto | Cant | P.Unit | Subtotal    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appdocument "github.com/tu-usuario/stockflow/internal/application/document"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 25, Green: 70, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDocumentPDF implementa document.PDFGenerator usando Maroto v2.
type MarotoDocumentPDF struct{}

// NewMarotoDocumentPDF construye el generador.
func NewMarotoDocumentPDF() *MarotoDocumentPDF { return &MarotoDocumentPDF{} }

// GenerateDocumentPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoDocumentPDF) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.Document,
	warehouse *entity.Warehouse,
	lines []appdocument.LineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTitle(doc.Kind)+" "+doc.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc, warehouse))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(lines))

	if doc.Notes != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(notesRow(doc.Notes))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return out.GetBytes(), nil
}

func docTitle(kind string) string {
	if kind == entity.DocumentKindDelivery {
		return "REMISIÓN DE ENTREGA"
	}
	return "COMPROBANTE DE RECEPCIÓN"
}

func counterpartyLabel(kind string) string {
	if kind == entity.DocumentKindDelivery {
		return "Cliente"
	}
	return "Proveedor"
}

// headerRow: tipo de documento + referencia (izq) y fecha (der).
func headerRow(doc *entity.Document) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(docTitle(doc.Kind), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ref: "+doc.Reference, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+doc.DocumentDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Estado: "+doc.Status, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partiesRow: contraparte y bodega.
func partiesRow(doc *entity.Document, warehouse *entity.Warehouse) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(counterpartyLabel(doc.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Counterparty, props.Text{Size: 9, Top: 7}),
		),
		col.New(6).Add(
			text.New("Bodega", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(warehouse.Code+" — "+warehouse.Name, props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del documento.
func tableLineRows(lines []appdocument.LineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(l.LineNo),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				strconv.FormatInt(l.Quantity, 10)+" "+l.UnitMeasure,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total del documento alineado a la derecha.
func totalRow(lines []appdocument.LineForPDF) core.Row {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// notesRow: observaciones del documento.
func notesRow(notes string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Observaciones", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}
