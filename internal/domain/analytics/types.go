// Package analytics implementa el motor de agregación en memoria del dashboard
// de ventas: KPIs por cliente, serie mensual, resumen por grupo de artículos y
// por artículo, resumen por ställe, la proyección pública (sin datos de costo)
// y el cálculo de bonificación.
//
// Todas las funciones son puras: reciben las filas ya parseadas, no hacen I/O
// y devuelven estructuras nuevas sin estado compartido entre invocaciones.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownGroup es el centinela bajo el que se agrupan las filas con código de
// grupo o de artículo vacío ("Okänd" en el export original sueco).
const UnknownGroup = "Okänd"

// Límites de truncado de los rankings por ventas descendentes.
const (
	topCategories = 10
	topProducts   = 15
)

// SalesKPI cifras derivadas del conjunto de filas de un cliente.
type SalesKPI struct {
	TotalSales        decimal.Decimal `json:"total_sales"`         // suma de montos facturados
	OrderCount        int             `json:"order_count"`         // pedidos DISTINTOS, no filas
	LineCount         int             `json:"line_count"`          // filas (líneas de pedido)
	AverageOrderValue decimal.Decimal `json:"average_order_value"` // TotalSales / OrderCount; 0 si no hay pedidos
	TotalCost         decimal.Decimal `json:"total_cost"`          // SENSIBLE
	Margin            decimal.Decimal `json:"margin"`              // SENSIBLE: TotalSales - TotalCost
	MarginPercent     decimal.Decimal `json:"margin_percent"`      // SENSIBLE: Margin / TotalSales * 100; 0 si TotalSales = 0
}

// MonthlyBucket acumulado de un mes calendario (clave año+mes).
type MonthlyBucket struct {
	Label      string          `json:"label"` // nombre corto del mes en sueco, solo presentación
	Year       int             `json:"year"`
	Month      int             `json:"month"` // 1..12
	Sales      decimal.Decimal `json:"sales"`
	Cost       decimal.Decimal `json:"cost"`   // SENSIBLE
	OrderCount int             `json:"orders"` // pedidos distintos observados en el mes
}

// CategorySummary acumulado por grupo de artículos (varugrupp).
type CategorySummary struct {
	CategoryCode string          `json:"category_code"`
	Label        string          `json:"label,omitempty"` // resuelto por el consumidor, nunca afecta la agrupación
	Sales        decimal.Decimal `json:"sales"`
	Quantity     decimal.Decimal `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"`   // SENSIBLE
	Margin       decimal.Decimal `json:"margin"` // SENSIBLE: Sales - Cost
}

// ProductSummary acumulado por artículo (artikelnummer).
// CategoryCode sigue la política explícita de primera aparición: el primer
// grupo observado para el artículo queda fijado aunque filas posteriores
// traigan otro grupo.
type ProductSummary struct {
	ProductCode  string          `json:"product_code"`
	CategoryCode string          `json:"category_code"`
	Label        string          `json:"label,omitempty"`
	Sales        decimal.Decimal `json:"sales"`
	Quantity     decimal.Decimal `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"` // SENSIBLE; margen = Sales - Cost lo deriva el consumidor
}

// SiteSummary acumulado por ställe (sucursal / punto de venta).
type SiteSummary struct {
	Site              int             `json:"site"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	OrderCount        int             `json:"order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	Margin            decimal.Decimal `json:"margin"`         // SENSIBLE
	MarginPercent     decimal.Decimal `json:"margin_percent"` // SENSIBLE
}

// Period rango [min, max] de fechas de factura observadas.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CustomerSummary raíz del agregado: todo lo derivado para un cliente.
// Se construye completo en cada selección de cliente y no se muta después.
type CustomerSummary struct {
	CustomerID    int               `json:"customer_id"`
	Period        Period            `json:"period"`
	KPIs          SalesKPI          `json:"kpis"`
	MonthlySales  []MonthlyBucket   `json:"monthly_sales"`
	TopCategories []CategorySummary `json:"top_categories"` // <= 10
	TopProducts   []ProductSummary  `json:"top_products"`   // <= 15
	Sites         []SiteSummary     `json:"sites"`          // ascendente por ställe
}
