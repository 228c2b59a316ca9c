package analytics

import (
	"sort"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// FilterByCustomer devuelve las filas cuyo número de cliente coincide exactamente.
func FilterByCustomer(rows []entity.OrderRow, customerID int) []entity.OrderRow {
	var filtered []entity.OrderRow
	for _, r := range rows {
		if r.CustomerID == customerID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ListDistinctCustomers devuelve los números de cliente distintos del conjunto
// completo, ascendentes. Es la única fuente del selector de clientes: todo
// cliente listado tiene al menos una fila.
func ListDistinctCustomers(rows []entity.OrderRow) []int {
	seen := make(map[int]struct{})
	for _, r := range rows {
		seen[r.CustomerID] = struct{}{}
	}
	customers := make([]int, 0, len(seen))
	for id := range seen {
		customers = append(customers, id)
	}
	sort.Ints(customers)
	return customers
}

// BuildCustomerSummary compone el resumen completo de un cliente a partir de
// sus filas ya filtradas. Precondición: rows no vacío (el selector solo expone
// clientes con filas); con entrada vacía el período queda en cero y los
// agregados vacíos.
func BuildCustomerSummary(rows []entity.OrderRow, customerID int) CustomerSummary {
	var period Period
	for i, r := range rows {
		if i == 0 || r.InvoiceDate.Before(period.Start) {
			period.Start = r.InvoiceDate
		}
		if i == 0 || r.InvoiceDate.After(period.End) {
			period.End = r.InvoiceDate
		}
	}

	return CustomerSummary{
		CustomerID:    customerID,
		Period:        period,
		KPIs:          ComputeKPIs(rows),
		MonthlySales:  ComputeMonthlySeries(rows),
		TopCategories: ComputeCategorySummary(rows),
		TopProducts:   ComputeProductSummary(rows),
		Sites:         ComputeSiteSummaries(rows),
	}
}
