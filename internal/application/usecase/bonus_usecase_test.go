package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

func decimalDe(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func datasetConVenta(t *testing.T, customerID int, venta float64) *DatasetUseCase {
	t.Helper()
	dataset := NewDatasetUseCase()
	dataset.Replace([]entity.OrderRow{filaDePedido(customerID, 100, venta)}, "pedidos.csv")
	return dataset
}

func TestCalculateTarifaRak(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	res, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{
		Tariff:  "rak",
		Percent: "2.5",
	})
	require.NoError(t, err)

	assert.True(t, res.BonusAmount.Equal(decimalDe("25000")), "bonus = %s", res.BonusAmount)
	assert.True(t, res.DeductedAmount.IsZero())
}

func TestCalculateTarifaMedAvdrag(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	res, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{
		Tariff:    "medAvdrag",
		Percent:   "3.0",
		Deduction: "150000",
	})
	require.NoError(t, err)

	assert.True(t, res.DeductedAmount.Equal(decimalDe("150000")))
	assert.True(t, res.BaseAmount.Equal(decimalDe("850000")))
	assert.True(t, res.BonusAmount.Equal(decimalDe("25500")), "bonus = %s", res.BonusAmount)
}

// La UI sueca manda coma decimal y espacios de miles; deben aceptarse.
func TestCalculateAceptaComaDecimal(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	res, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{
		Tariff:    "medAvdrag",
		Percent:   "2,5",
		Deduction: "150 000",
	})
	require.NoError(t, err)

	assert.True(t, res.BonusAmount.Equal(decimalDe("21250")), "bonus = %s", res.BonusAmount)
}

func TestCalculateEntradaNoNumericaValeCero(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	res, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{
		Tariff:  "rak",
		Percent: "abc",
	})
	require.NoError(t, err)

	assert.True(t, res.BonusAmount.IsZero())
}

// Una tarifa desconocida cae en "rak": el formulario solo ofrece dos valores y
// el default histórico es la tarifa sin franquicia.
func TestCalculateTarifaDesconocidaCaeEnRak(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	res, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{
		Tariff:    "otra",
		Percent:   "2.5",
		Deduction: "150000",
	})
	require.NoError(t, err)

	assert.True(t, res.DeductedAmount.IsZero())
	assert.True(t, res.BonusAmount.Equal(decimalDe("25000")))
}

func TestCalculateSinDataset(t *testing.T) {
	uc := NewBonusUseCase(NewDatasetUseCase())

	_, err := uc.Calculate(context.Background(), 7, dto.BonusRequest{Tariff: "rak", Percent: "2.5"})

	assert.ErrorIs(t, err, domain.ErrNoDataset)
}

func TestCalculateClienteSinFilas(t *testing.T) {
	uc := NewBonusUseCase(datasetConVenta(t, 7, 1_000_000))

	_, err := uc.Calculate(context.Background(), 99, dto.BonusRequest{Tariff: "rak", Percent: "2.5"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
