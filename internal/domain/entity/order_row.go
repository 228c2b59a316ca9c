package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow representa una línea de pedido facturada del export CSV (una fila = una línea).
// Es inmutable tras el parseo y vive en memoria solo durante la sesión del archivo cargado.
//
// Los montos son cifras con signo independiente: devoluciones y notas de crédito
// llegan como negativos, y nada obliga a que CostAmount <= InvoicedAmount por fila.
type OrderRow struct {
	Company    int // koncern
	Firm       int // firma
	Site       int // ställe (sucursal / punto de venta)
	CustomerID int // kundnummer
	OrderID    int // ordernummer: varias filas pueden compartirlo (un pedido, varios artículos)
	InvoiceID  int // faktura / verifikationsnummer

	InvoiceDate time.Time // fecha calendario, sin semántica de hora

	Quantity       decimal.Decimal // antal, puede ser fraccionario
	CategoryCode   string          // varugrupp; vacío -> centinela al agregar
	ProductCode    string          // artikelnummer; vacío -> centinela al agregar
	InvoicedAmount decimal.Decimal // fakturerat belopp (valor de venta hacia el cliente)
	CostAmount     decimal.Decimal // kostbelopp — SENSIBLE: nunca en salidas de cara al cliente

	// Campos descriptivos de paso: se conservan pero no se agregan.
	PriceUnit    string // fakturerad prisenhet
	PricingSales string // pristillsättning, precio de venta
	PricingCost  string // pristillsättning, precio de costo
	HandlerID    int    // orderbehandlare
	CashSaleCode string // kontantförsäljningskod
}
