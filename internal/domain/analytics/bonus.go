package analytics

import "github.com/shopspring/decimal"

// Tariff estructura de la bonificación anual pactada con el cliente.
type Tariff string

const (
	// TariffFlat porcentaje directo sobre la venta total ("rak" en el acuerdo original).
	TariffFlat Tariff = "rak"
	// TariffWithDeduction porcentaje sobre la venta total menos una franquicia fija ("medAvdrag").
	TariffWithDeduction Tariff = "medAvdrag"
)

// BonusCalculation resultado efímero del cálculo; se recalcula en cada cambio
// de parámetros y nunca se persiste.
type BonusCalculation struct {
	BaseAmount     decimal.Decimal `json:"base_amount"`     // venta total usada como punto de partida
	DeductedAmount decimal.Decimal `json:"deducted_amount"` // franquicia aplicada (0 en tarifa rak)
	BonusAmount    decimal.Decimal `json:"bonus_amount"`    // redondeado a unidad monetaria entera
}

// CalculateBonus calcula la bonificación sobre la venta total según la tarifa.
//
//	rak:       bonus = round(totalSales * percent / 100)
//	medAvdrag: deducido = min(deduction, totalSales)
//	           base    = max(0, totalSales - deducido)
//	           bonus   = round(base * percent / 100)
//
// El redondeo es a la unidad entera, mitades alejándose de cero. La entrada ya
// viene saneada por la capa de presentación (valores no parseables llegan como
// 0); aquí no hay validación ni errores. Una venta total negativa (cliente con
// más notas de crédito que compras) fluye tal cual por las fórmulas y puede
// producir una bonificación negativa: comportamiento aceptado, no un defecto.
func CalculateBonus(totalSales decimal.Decimal, tariff Tariff, percent, deduction decimal.Decimal) BonusCalculation {
	if tariff == TariffFlat {
		bonus := totalSales.Mul(percent).Div(hundred)
		return BonusCalculation{
			BaseAmount:     totalSales,
			DeductedAmount: decimal.Zero,
			BonusAmount:    bonus.Round(0),
		}
	}

	deducted := decimal.Min(deduction, totalSales)
	base := decimal.Max(decimal.Zero, totalSales.Sub(deducted))
	bonus := base.Mul(percent).Div(hundred)
	return BonusCalculation{
		BaseAmount:     totalSales,
		DeductedAmount: deducted,
		BonusAmount:    bonus.Round(0),
	}
}
