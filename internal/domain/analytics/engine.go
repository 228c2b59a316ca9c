package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Nombres cortos de mes en sueco, solo para la etiqueta de presentación.
var monthLabels = [12]string{
	"jan", "feb", "mar", "apr", "maj", "jun",
	"jul", "aug", "sep", "okt", "nov", "dec",
}

// ComputeKPIs calcula las cifras globales del conjunto de filas.
//
// OrderCount cuenta números de pedido DISTINTOS: un pedido con varios artículos
// ocupa varias filas pero es un solo pedido. Las divisiones con denominador
// cero devuelven 0, nunca error ni NaN. Un conjunto vacío produce KPIs en cero.
func ComputeKPIs(rows []entity.OrderRow) SalesKPI {
	var totalSales, totalCost decimal.Decimal
	orders := make(map[int]struct{})

	for _, r := range rows {
		totalSales = totalSales.Add(r.InvoicedAmount)
		totalCost = totalCost.Add(r.CostAmount)
		orders[r.OrderID] = struct{}{}
	}

	orderCount := len(orders)
	avgOrder := decimal.Zero
	if orderCount > 0 {
		avgOrder = totalSales.Div(decimal.NewFromInt(int64(orderCount)))
	}

	margin := totalSales.Sub(totalCost)
	marginPct := decimal.Zero
	if !totalSales.IsZero() {
		marginPct = margin.Div(totalSales).Mul(hundred)
	}

	return SalesKPI{
		TotalSales:        totalSales,
		OrderCount:        orderCount,
		LineCount:         len(rows),
		AverageOrderValue: avgOrder,
		TotalCost:         totalCost,
		Margin:            margin,
		MarginPercent:     marginPct,
	}
}

type monthKey struct {
	year  int
	month int
}

// ComputeMonthlySeries agrupa por (año, mes) de la fecha de factura y suma
// ventas y costo por bucket. El conteo de pedidos distintos por mes se hace en
// una segunda pasada independiente con la misma clave, de modo que la
// asignación fila→bucket coincide exactamente. Salida ascendente por (año, mes).
func ComputeMonthlySeries(rows []entity.OrderRow) []MonthlyBucket {
	buckets := make(map[monthKey]*MonthlyBucket)

	for _, r := range rows {
		key := monthKey{year: r.InvoiceDate.Year(), month: int(r.InvoiceDate.Month())}
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyBucket{
				Label: monthLabels[key.month-1],
				Year:  key.year,
				Month: key.month,
			}
			buckets[key] = b
		}
		b.Sales = b.Sales.Add(r.InvoicedAmount)
		b.Cost = b.Cost.Add(r.CostAmount)
	}

	// Segunda pasada: pedidos distintos por mes.
	ordersByMonth := make(map[monthKey]map[int]struct{})
	for _, r := range rows {
		key := monthKey{year: r.InvoiceDate.Year(), month: int(r.InvoiceDate.Month())}
		if ordersByMonth[key] == nil {
			ordersByMonth[key] = make(map[int]struct{})
		}
		ordersByMonth[key][r.OrderID] = struct{}{}
	}
	for key, orders := range ordersByMonth {
		buckets[key].OrderCount = len(orders)
	}

	series := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series
}

// ComputeCategorySummary agrupa por código de grupo (vacío -> centinela), suma
// ventas/cantidad/costo y deriva el margen. Ordena por ventas descendentes con
// orden estable de primera aparición para empates y trunca al top 10.
func ComputeCategorySummary(rows []entity.OrderRow) []CategorySummary {
	groups := make(map[string]*CategorySummary)
	var order []string // primera aparición, para desempate determinista

	for _, r := range rows {
		key := r.CategoryCode
		if key == "" {
			key = UnknownGroup
		}
		g, ok := groups[key]
		if !ok {
			g = &CategorySummary{CategoryCode: key}
			groups[key] = g
			order = append(order, key)
		}
		g.Sales = g.Sales.Add(r.InvoicedAmount)
		g.Quantity = g.Quantity.Add(r.Quantity)
		g.Cost = g.Cost.Add(r.CostAmount)
	}

	result := make([]CategorySummary, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		g.Margin = g.Sales.Sub(g.Cost)
		result = append(result, *g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales.GreaterThan(result[j].Sales)
	})
	if len(result) > topCategories {
		result = result[:topCategories]
	}
	return result
}

// ComputeProductSummary agrupa por código de artículo (vacío -> centinela) y
// suma ventas/cantidad/costo. El grupo asociado al artículo sigue la política
// de primera aparición: queda fijado con la primera fila del artículo aunque
// filas posteriores traigan otro grupo. Ordena por ventas descendentes con
// desempate de primera aparición y trunca al top 15.
func ComputeProductSummary(rows []entity.OrderRow) []ProductSummary {
	products := make(map[string]*ProductSummary)
	var order []string

	for _, r := range rows {
		key := r.ProductCode
		if key == "" {
			key = UnknownGroup
		}
		p, ok := products[key]
		if !ok {
			p = &ProductSummary{ProductCode: key, CategoryCode: r.CategoryCode}
			products[key] = p
			order = append(order, key)
		}
		p.Sales = p.Sales.Add(r.InvoicedAmount)
		p.Quantity = p.Quantity.Add(r.Quantity)
		p.Cost = p.Cost.Add(r.CostAmount)
	}

	result := make([]ProductSummary, 0, len(products))
	for _, key := range order {
		result = append(result, *products[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales.GreaterThan(result[j].Sales)
	})
	if len(result) > topProducts {
		result = result[:topProducts]
	}
	return result
}

// ComputeSiteSummaries agrupa por ställe y calcula las mismas cifras que los
// KPIs globales, una fila de resumen por sitio, ascendente por número de sitio.
func ComputeSiteSummaries(rows []entity.OrderRow) []SiteSummary {
	type siteAcc struct {
		sales  decimal.Decimal
		cost   decimal.Decimal
		orders map[int]struct{}
	}
	sites := make(map[int]*siteAcc)

	for _, r := range rows {
		s, ok := sites[r.Site]
		if !ok {
			s = &siteAcc{orders: make(map[int]struct{})}
			sites[r.Site] = s
		}
		s.sales = s.sales.Add(r.InvoicedAmount)
		s.cost = s.cost.Add(r.CostAmount)
		s.orders[r.OrderID] = struct{}{}
	}

	result := make([]SiteSummary, 0, len(sites))
	for site, acc := range sites {
		orderCount := len(acc.orders)
		avgOrder := decimal.Zero
		if orderCount > 0 {
			avgOrder = acc.sales.Div(decimal.NewFromInt(int64(orderCount)))
		}
		margin := acc.sales.Sub(acc.cost)
		marginPct := decimal.Zero
		if !acc.sales.IsZero() {
			marginPct = margin.Div(acc.sales).Mul(hundred)
		}
		result = append(result, SiteSummary{
			Site:              site,
			TotalSales:        acc.sales,
			OrderCount:        orderCount,
			AverageOrderValue: avgOrder,
			Margin:            margin,
			MarginPercent:     marginPct,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Site < result[j].Site })
	return result
}
