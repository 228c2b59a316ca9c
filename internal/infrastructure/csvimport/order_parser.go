// Package csvimport parsea los exports CSV delimitados por punto y coma:
// el archivo de pedidos del ERP sueco y los dos formatos de importación de
// referencia (grupos de artículos y artículos).
//
// El contrato con el motor de agregación es de coerción, no de rechazo: una
// celda numérica no parseable vale 0, una fecha malformada vale "ahora" y los
// códigos llegan recortados y sin comillas. El motor nunca ve datos inválidos.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// bomPrefix marca de orden de bytes UTF-8 que algunos exports anteponen al encabezado.
const bomPrefix = "\ufeff"

// Encabezados del export de pedidos, tal como los emite el ERP.
const (
	colCompany      = "Koncern"
	colFirm         = "Firma"
	colSite         = "Ställe"
	colCustomer     = "Kundnummer"
	colInvoiceDate  = "Fakturadatum"
	colOrder        = "Ordernummer"
	colInvoice      = "Faktura / verifikationsnummer"
	colQuantity     = "Antal"
	colCategory     = "Varugrupp"
	colProduct      = "Artikelnummer"
	colAmount       = "Fakturarat belopp"
	colPriceUnit    = "Fakturerad prisenhet"
	colCost         = "Fakturarat kostbelopp"
	colPricingSales = "Pristillsättning - försäljningspris"
	colPricingCost  = "Pristillsättning, kostpris"
	colHandler      = "Orderbehandlare"
	colCashSale     = "Kontantförsäljnings kod"
)

// ParseOrderRows lee el export completo de pedidos. Falla solo ante un CSV
// estructuralmente roto o sin encabezado; las celdas individuales se sanean.
func ParseOrderRows(r io.Reader) ([]entity.OrderRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // el ERP a veces recorta columnas finales vacías

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv de pedidos: leer encabezado: %w", err)
	}
	idx := indexHeader(header)

	var rows []entity.OrderRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv de pedidos: leer fila: %w", err)
		}
		if isEmptyRecord(record) {
			continue
		}
		rows = append(rows, transformRow(record, idx))
	}
	return rows, nil
}

// indexHeader mapea nombre de columna -> posición, con BOM y espacios fuera.
func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, bomPrefix))
		idx[name] = i
	}
	return idx
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func transformRow(record []string, idx map[string]int) entity.OrderRow {
	cell := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	return entity.OrderRow{
		Company:        parseInt(cell(colCompany)),
		Firm:           parseInt(cell(colFirm)),
		Site:           parseInt(cell(colSite)),
		CustomerID:     parseInt(cell(colCustomer)),
		InvoiceDate:    parseDate(cell(colInvoiceDate)),
		OrderID:        parseInt(cell(colOrder)),
		InvoiceID:      parseInt(cell(colInvoice)),
		Quantity:       parseSwedishDecimal(cell(colQuantity)),
		CategoryCode:   cleanCode(cell(colCategory)),
		ProductCode:    cleanCode(cell(colProduct)),
		InvoicedAmount: parseSwedishDecimal(cell(colAmount)),
		PriceUnit:      strings.TrimSpace(cell(colPriceUnit)),
		CostAmount:     parseSwedishDecimal(cell(colCost)),
		PricingSales:   strings.TrimSpace(cell(colPricingSales)),
		PricingCost:    strings.TrimSpace(cell(colPricingCost)),
		HandlerID:      parseInt(cell(colHandler)),
		CashSaleCode:   strings.TrimSpace(cell(colCashSale)),
	}
}

// parseSwedishDecimal acepta coma decimal y separadores de miles con espacio
// (incluido NBSP). Valor no parseable -> 0.
func parseSwedishDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// parseInt coerciona a entero; no parseable -> 0.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseDate espera AAAAMMDD; malformada -> fecha actual, igual que el
// dashboard original.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return time.Now()
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Now()
	}
	return t
}

// cleanCode quita comillas sueltas y espacios de los códigos.
func cleanCode(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
