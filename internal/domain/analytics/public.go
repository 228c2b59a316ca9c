package analytics

import "github.com/shopspring/decimal"

// Proyección pública ("vista cliente"): la variante del resumen que puede
// salir de la empresa. Los tipos públicos son ESTRUCTURALMENTE incapaces de
// transportar costo o margen: no existe el campo, así que ninguna ruta de
// serialización puede filtrarlo. ToPublicSummary es el único punto del sistema
// que decide qué campos son sensibles; la UI en modo cliente y el PDF de
// cliente consumen exclusivamente esta proyección.
//
// Al añadir un campo nuevo al resumen hay que darlo de alta aquí de forma
// explícita (lista de permitidos, nunca lista de exclusión).

// PublicSalesKPI KPIs sin TotalCost, Margin ni MarginPercent.
type PublicSalesKPI struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	OrderCount        int             `json:"order_count"`
	LineCount         int             `json:"line_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// PublicMonthlyBucket bucket mensual sin costo.
type PublicMonthlyBucket struct {
	Label      string          `json:"label"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Sales      decimal.Decimal `json:"sales"`
	OrderCount int             `json:"orders"`
}

// PublicCategorySummary grupo sin costo ni margen.
type PublicCategorySummary struct {
	CategoryCode string          `json:"category_code"`
	Label        string          `json:"label,omitempty"`
	Sales        decimal.Decimal `json:"sales"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// PublicProductSummary artículo sin costo.
type PublicProductSummary struct {
	ProductCode  string          `json:"product_code"`
	CategoryCode string          `json:"category_code"`
	Label        string          `json:"label,omitempty"`
	Sales        decimal.Decimal `json:"sales"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// PublicSiteSummary resumen por ställe sin margen.
type PublicSiteSummary struct {
	Site              int             `json:"site"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	OrderCount        int             `json:"order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// PublicCustomerSummary subconjunto estricto de CustomerSummary.
type PublicCustomerSummary struct {
	CustomerID    int                     `json:"customer_id"`
	Period        Period                  `json:"period"`
	KPIs          PublicSalesKPI          `json:"kpis"`
	MonthlySales  []PublicMonthlyBucket   `json:"monthly_sales"`
	TopCategories []PublicCategorySummary `json:"top_categories"`
	TopProducts   []PublicProductSummary  `json:"top_products"`
	Sites         []PublicSiteSummary     `json:"sites"`
}

// ToPublicSummary proyecta el resumen completo a su variante pública.
// Transformación estructural pura: copia campo a campo los valores permitidos.
func ToPublicSummary(s CustomerSummary) PublicCustomerSummary {
	monthly := make([]PublicMonthlyBucket, 0, len(s.MonthlySales))
	for _, m := range s.MonthlySales {
		monthly = append(monthly, PublicMonthlyBucket{
			Label:      m.Label,
			Year:       m.Year,
			Month:      m.Month,
			Sales:      m.Sales,
			OrderCount: m.OrderCount,
		})
	}

	categories := make([]PublicCategorySummary, 0, len(s.TopCategories))
	for _, c := range s.TopCategories {
		categories = append(categories, PublicCategorySummary{
			CategoryCode: c.CategoryCode,
			Label:        c.Label,
			Sales:        c.Sales,
			Quantity:     c.Quantity,
		})
	}

	products := make([]PublicProductSummary, 0, len(s.TopProducts))
	for _, p := range s.TopProducts {
		products = append(products, PublicProductSummary{
			ProductCode:  p.ProductCode,
			CategoryCode: p.CategoryCode,
			Label:        p.Label,
			Sales:        p.Sales,
			Quantity:     p.Quantity,
		})
	}

	return PublicCustomerSummary{
		CustomerID: s.CustomerID,
		Period:     s.Period,
		KPIs: PublicSalesKPI{
			TotalSales:        s.KPIs.TotalSales,
			OrderCount:        s.KPIs.OrderCount,
			LineCount:         s.KPIs.LineCount,
			AverageOrderValue: s.KPIs.AverageOrderValue,
		},
		MonthlySales:  monthly,
		TopCategories: categories,
		TopProducts:   products,
		Sites:         ToPublicSiteSummaries(s.Sites),
	}
}

// ToPublicSiteSummaries proyección pública de los resúmenes por ställe.
func ToPublicSiteSummaries(sites []SiteSummary) []PublicSiteSummary {
	public := make([]PublicSiteSummary, 0, len(sites))
	for _, s := range sites {
		public = append(public, PublicSiteSummary{
			Site:              s.Site,
			TotalSales:        s.TotalSales,
			OrderCount:        s.OrderCount,
			AverageOrderValue: s.AverageOrderValue,
		})
	}
	return public
}
