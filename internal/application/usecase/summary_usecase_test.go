package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// etiquetasFijas resuelve todas las etiquetas con prefijos predecibles.
type etiquetasFijas struct{}

func (etiquetasFijas) CategoryLabel(_ context.Context, code string) string { return "grupo " + code }
func (etiquetasFijas) ProductLabel(_ context.Context, code string) string  { return "art " + code }

func TestGetSummarySinDatasetCargado(t *testing.T) {
	uc := NewSummaryUseCase(NewDatasetUseCase(), etiquetasFijas{})

	_, err := uc.GetSummary(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrNoDataset)
}

func TestGetSummaryClienteSinFilas(t *testing.T) {
	dataset := NewDatasetUseCase()
	dataset.Replace([]entity.OrderRow{filaDePedido(7, 100, 500)}, "pedidos.csv")
	uc := NewSummaryUseCase(dataset, etiquetasFijas{})

	_, err := uc.GetSummary(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSummaryResuelveEtiquetas(t *testing.T) {
	dataset := NewDatasetUseCase()
	dataset.Replace([]entity.OrderRow{
		filaDePedido(7, 100, 500),
		filaDePedido(9, 200, 900), // otro cliente, no debe mezclarse
	}, "pedidos.csv")
	uc := NewSummaryUseCase(dataset, etiquetasFijas{})

	summary, err := uc.GetSummary(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.CustomerID)
	assert.Equal(t, 1, summary.KPIs.OrderCount)
	require.Len(t, summary.TopCategories, 1)
	assert.Equal(t, "grupo VG01", summary.TopCategories[0].Label)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "art ART-1", summary.TopProducts[0].Label)
}

func TestGetSummarySinResolverDeEtiquetas(t *testing.T) {
	dataset := NewDatasetUseCase()
	dataset.Replace([]entity.OrderRow{filaDePedido(7, 100, 500)}, "pedidos.csv")
	uc := NewSummaryUseCase(dataset, nil)

	summary, err := uc.GetSummary(context.Background(), 7)
	require.NoError(t, err)

	assert.Empty(t, summary.TopCategories[0].Label)
}

func TestGetPublicSummaryNoExponeCostos(t *testing.T) {
	dataset := NewDatasetUseCase()
	dataset.Replace([]entity.OrderRow{filaDePedido(7, 100, 500)}, "pedidos.csv")
	uc := NewSummaryUseCase(dataset, etiquetasFijas{})

	public, err := uc.GetPublicSummary(context.Background(), 7)
	require.NoError(t, err)

	raw, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "cost")
	assert.NotContains(t, string(raw), "margin")
	assert.Equal(t, 7, public.CustomerID)
}
