// Package pdf implementa la proyección de un documento (factura, cotización
// o recibo) a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Nombre del negocio                                  │
//	│  CONTACTO: Dirección | Tel | Email | Web (opcional)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: TIPO DE DOCUMENTO + Número                        │
//	│  DOS COLUMNAS: Cliente  │  Fecha emisión / vencimiento       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | P.Unit | Total línea            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (si tasa > 0) / TOTAL          │
//	│  NOTAS (opcional)                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// dateLayout formato de fechas en el PDF.
const dateLayout = "2006-01-02"

// titles etiqueta del documento por tipo.
var titles = map[string]string{
	entity.DocTypeInvoice: "INVOICE",
	entity.DocTypeQuote:   "QUOTE",
	entity.DocTypeReceipt: "RECEIPT",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, p *billing.DocumentPayload) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(p.Document.Type)+" "+p.Document.Number, true).
		WithAuthor(p.Settings.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	// Título + contacto del negocio
	m.AddRows(titleRow(p.Settings))
	if contact := contactLine(p.Settings); contact != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Cabecera tipo + número y bloque cliente/fechas
	m.AddRows(headerRow(p.Document))
	m.AddRows(clientDatesRow(p.Client, p.Document))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(p.Items, p.Settings.CurrencySymbol) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(p.Document, p.Settings))

	// Notas
	if p.Document.Notes != "" {
		m.AddRows(line.NewRow(4))
		m.AddRows(notesRows(p.Document.Notes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: nombre del negocio como título del documento.
func titleRow(s *entity.Settings) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(s.BusinessName, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
		}),
	))
}

// contactLine: bloque de contacto opcional, solo las partes presentes.
func contactLine(s *entity.Settings) string {
	var parts []string
	for _, v := range []string{s.Address, s.Phone, s.Email, s.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "   |   ")
}

// headerRow: tipo de documento (izq) y número (der).
func headerRow(d *entity.Document) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(documentTitle(d.Type), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(d.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Status: "+d.Status, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// clientDatesRow: dos columnas, cliente a la izquierda y fechas a la derecha.
func clientDatesRow(c *entity.Client, d *entity.Document) core.Row {
	left := []core.Component{
		text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	}
	contact := clientContactLine(c)
	if contact != "" {
		left = append(left, text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}))
	}

	right := []core.Component{
		text.New("Issue date: "+d.IssueDate.Format(dateLayout), props.Text{
			Size: 9, Align: align.Right, Top: 2,
		}),
	}
	if d.DueDate != nil {
		right = append(right, text.New("Due date: "+d.DueDate.Format(dateLayout), props.Text{
			Size: 9, Align: align.Right, Top: 8,
		}))
	}

	return row.New(18).Add(
		col.New(7).Add(left...),
		col.New(5).Add(right...),
	)
}

func clientContactLine(c *entity.Client) string {
	var parts []string
	for _, v := range []string{c.Company, c.Address, c.Email, c.Phone} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "   |   ")
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
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea, en orden de despliegue.
func tableItemRows(items []*entity.DocumentItem, symbol string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				formatQuantity(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(symbol, it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatAmount(symbol, it.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. La línea de impuesto
// solo aparece cuando la tasa configurada es mayor que cero.
func totalsRow(d *entity.Document, s *entity.Settings) core.Row {
	label := func(t string, top float64) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(t string, top float64) core.Component {
		return text.New(t, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Subtotal:", 1)}
	values := []core.Component{value(formatAmount(s.CurrencySymbol, d.Subtotal), 1)}
	top := 7.0
	if s.TaxRate.GreaterThan(decimal.Zero) {
		labels = append(labels, label(fmt.Sprintf("Tax (%s%%):", formatQuantity(s.TaxRate)), top))
		values = append(values, value(formatAmount(s.CurrencySymbol, d.TaxAmount), top))
		top += 6
	}
	labels = append(labels, text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 2, Top: top,
		Color: colorPrimary,
	}))
	values = append(values, text.New(formatAmount(s.CurrencySymbol, d.TotalAmount), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Top: top,
		Color: colorPrimary,
	}))

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// notesRows: bloque de notas al final del documento.
func notesRows(notes string) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Notes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documentTitle(docType string) string {
	if t, ok := titles[docType]; ok {
		return t
	}
	return strings.ToUpper(docType)
}

// moneyPrinter agrupa miles con separador y dos decimales (en-US).
var moneyPrinter = message.NewPrinter(language.English)

// formatAmount: símbolo de moneda + monto con separador de miles y dos
// decimales. Ej: "$1,234.50".
func formatAmount(symbol string, d decimal.Decimal) string {
	return symbol + moneyPrinter.Sprintf("%.2f", d.InexactFloat64())
}

// formatQuantity imprime la cantidad sin fracciones de ceros a la derecha:
// "2.00" → "2", "2.50" → "2.5".
func formatQuantity(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
