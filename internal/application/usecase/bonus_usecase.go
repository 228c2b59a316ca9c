package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
)

// BonusUseCase calcula la bonificación de un cliente a partir de su venta
// total en el dataset de la sesión. El saneo de parámetros vive aquí: el motor
// recibe siempre números válidos (no parseable -> 0, según su contrato).
type BonusUseCase struct {
	dataset *DatasetUseCase
}

// NewBonusUseCase construye el caso de uso.
func NewBonusUseCase(dataset *DatasetUseCase) *BonusUseCase {
	return &BonusUseCase{dataset: dataset}
}

// Calculate resuelve la venta total del cliente y delega en el motor.
func (uc *BonusUseCase) Calculate(_ context.Context, customerID int, req dto.BonusRequest) (*analytics.BonusCalculation, error) {
	if uc.dataset.Empty() {
		return nil, domain.ErrNoDataset
	}
	rows := analytics.FilterByCustomer(uc.dataset.Rows(), customerID)
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	kpis := analytics.ComputeKPIs(rows)
	tariff := analytics.TariffFlat
	if req.Tariff == string(analytics.TariffWithDeduction) {
		tariff = analytics.TariffWithDeduction
	}

	result := analytics.CalculateBonus(
		kpis.TotalSales,
		tariff,
		coerceAmount(req.Percent),
		coerceAmount(req.Deduction),
	)
	return &result, nil
}

// coerceAmount convierte la entrada libre de la UI a decimal: acepta coma
// decimal sueca, ignora espacios, y devuelve 0 ante cualquier cosa no numérica
// o negativa (porcentaje y franquicia son >= 0 por construcción del formulario).
func coerceAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}
