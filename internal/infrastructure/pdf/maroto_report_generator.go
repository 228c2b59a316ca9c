// Package pdf implementa la generación del informe de análisis de cliente
// ("Kundanalys") con Maroto v2, en dos variantes:
//
//   - Cliente: recibe la proyección pública; costo y margen no existen en ese
//     tipo, así que esta variante no puede filtrar datos sensibles ni queriendo.
//   - Interna (archivo): el resumen completo, con costo, margen y el detalle
//     por ställe, marcada como documento interno.
//
// Layout de la página A4 (igual en ambas variantes, la interna añade columnas):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kundanalys / Kundnummer / Period                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SAMMANFATTNING: bloque de KPIs                              │
//	│  FÖRSÄLJNING PER MÅNAD: tabla mensual                        │
//	│  TOPP VARUGRUPPER: tabla de grupos                           │
//	│  TOPP ARTIKLAR: tabla de artículos                           │
//	│  [interna] SUMMERING PER STÄLLE                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// Formato numérico sueco (1 234,56) para todo el documento.
var sv = message.NewPrinter(language.Swedish)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCustomerReport genera la variante de cara al cliente.
func (g *MarotoReportGenerator) GenerateCustomerReport(
	_ context.Context,
	summary analytics.PublicCustomerSummary,
) ([]byte, error) {
	m := newDocument("Kundanalys")

	m.AddRows(headerRows(summary.CustomerID, summary.Period, "")...)
	m.AddRows(sectionTitle("Sammanfattning"))
	m.AddRows(kpiRows([][2]string{
		{"Total försäljning", currency(summary.KPIs.TotalSales)},
		{"Antal ordrar", count(summary.KPIs.OrderCount)},
		{"Antal orderrader", count(summary.KPIs.LineCount)},
		{"Snitt ordervärde", currency(summary.KPIs.AverageOrderValue)},
	})...)

	m.AddRows(sectionTitle("Försäljning per månad"))
	m.AddRows(tableHeader("Månad", "Försäljning", "Ordrar")...)
	for _, b := range summary.MonthlySales {
		m.AddRows(tableRow(
			fmt.Sprintf("%s %d", b.Label, b.Year),
			currency(b.Sales),
			count(b.OrderCount),
		))
	}

	m.AddRows(sectionTitle("Topp varugrupper"))
	m.AddRows(tableHeader("Varugrupp", "Försäljning", "Antal")...)
	for _, c := range summary.TopCategories {
		m.AddRows(tableRow(labelOr(c.Label, c.CategoryCode), currency(c.Sales), quantity(c.Quantity)))
	}

	m.AddRows(sectionTitle("Topp artiklar"))
	m.AddRows(tableHeader("Artikel", "Försäljning", "Antal")...)
	for _, p := range summary.TopProducts {
		m.AddRows(tableRow(labelOr(p.Label, p.ProductCode), currency(p.Sales), quantity(p.Quantity)))
	}

	return render(m)
}

// GenerateInternalReport genera la variante interna con datos completos.
func (g *MarotoReportGenerator) GenerateInternalReport(
	_ context.Context,
	summary analytics.CustomerSummary,
) ([]byte, error) {
	m := newDocument("Kundanalys – intern")

	m.AddRows(headerRows(summary.CustomerID, summary.Period, "INTERN – EJ FÖR KUND")...)
	m.AddRows(sectionTitle("Sammanfattning"))
	m.AddRows(kpiRows([][2]string{
		{"Total försäljning", currency(summary.KPIs.TotalSales)},
		{"Antal ordrar", count(summary.KPIs.OrderCount)},
		{"Antal orderrader", count(summary.KPIs.LineCount)},
		{"Snitt ordervärde", currency(summary.KPIs.AverageOrderValue)},
		{"Total kostnad", currency(summary.KPIs.TotalCost)},
		{"Marginal", currency(summary.KPIs.Margin)},
		{"Marginal %", percent(summary.KPIs.MarginPercent)},
	})...)

	m.AddRows(sectionTitle("Försäljning per månad"))
	m.AddRows(tableHeader("Månad", "Försäljning", "Kostnad", "Ordrar")...)
	for _, b := range summary.MonthlySales {
		m.AddRows(tableRow(
			fmt.Sprintf("%s %d", b.Label, b.Year),
			currency(b.Sales),
			currency(b.Cost),
			count(b.OrderCount),
		))
	}

	m.AddRows(sectionTitle("Topp varugrupper"))
	m.AddRows(tableHeader("Varugrupp", "Försäljning", "Antal", "Marginal")...)
	for _, c := range summary.TopCategories {
		m.AddRows(tableRow(labelOr(c.Label, c.CategoryCode), currency(c.Sales), quantity(c.Quantity), currency(c.Margin)))
	}

	m.AddRows(sectionTitle("Topp artiklar"))
	m.AddRows(tableHeader("Artikel", "Försäljning", "Antal", "Marginal")...)
	for _, p := range summary.TopProducts {
		m.AddRows(tableRow(labelOr(p.Label, p.ProductCode), currency(p.Sales), quantity(p.Quantity), currency(p.Sales.Sub(p.Cost))))
	}

	if len(summary.Sites) > 0 {
		m.AddRows(sectionTitle("Summering per ställe"))
		m.AddRows(tableHeader("Ställe", "Försäljning", "Ordrar", "Marginal %")...)
		for _, s := range summary.Sites {
			m.AddRows(tableRow(count(s.Site), currency(s.TotalSales), count(s.OrderCount), percent(s.MarginPercent)))
		}
	}

	return render(m)
}

// ── Construcción del documento ────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: título centrado, número de cliente y período; la variante
// interna añade la marca de documento interno.
func headerRows(customerID int, period analytics.Period, watermark string) []core.Row {
	rows := []core.Row{
		row.New(22).Add(
			col.New(12).Add(
				text.New("Kundanalys", props.Text{
					Style: fontstyle.Bold, Size: 18, Align: align.Center,
					Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("Kundnummer: %d", customerID), props.Text{
					Size: 12, Align: align.Center, Top: 10,
				}),
				text.New(
					fmt.Sprintf("Period: %s – %s",
						period.Start.Format("2006-01-02"),
						period.End.Format("2006-01-02")),
					props.Text{Size: 9, Align: align.Center, Top: 17, Color: colorGray},
				),
			),
		),
	}
	if watermark != "" {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New(watermark, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorWarn,
			})),
		))
	}
	rows = append(rows, line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 3,
		})),
	)
}

// kpiRows: bloque etiqueta/valor de dos columnas.
func kpiRows(pairs [][2]string) []core.Row {
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(p[0], props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(4).Add(text.New(p[1], props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(3),
		))
	}
	return rows
}

// tableHeader: cabecera de tabla; la primera columna pesa el doble.
func tableHeader(labels ...string) []core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(columnSize(i, len(labels))).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1}),
		))
	}
	return []core.Row{
		row.New(6).Add(cols...),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
	}
}

func tableRow(cells ...string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(columnSize(i, len(cells))).Add(
			text.New(cell, props.Text{Size: 8, Align: a, Top: 1}),
		))
	}
	return row.New(5).Add(cols...)
}

// columnSize reparte las 12 columnas de la grilla: la primera ocupa el resto
// tras dar un ancho fijo a las numéricas.
func columnSize(i, total int) int {
	const numericWidth = 3
	if i == 0 {
		return 12 - numericWidth*(total-1)
	}
	return numericWidth
}

// ── Formato sv-SE ─────────────────────────────────────────────────────────────

func currency(v decimal.Decimal) string {
	return sv.Sprintf("%.2f kr", v.InexactFloat64())
}

func quantity(v decimal.Decimal) string {
	return sv.Sprintf("%.4g", v.InexactFloat64())
}

func percent(v decimal.Decimal) string {
	return sv.Sprintf("%.1f %%", v.InexactFloat64())
}

func count(n int) string {
	return sv.Sprintf("%d", n)
}

func labelOr(label, code string) string {
	if label != "" {
		return label
	}
	return code
}
