package analytics_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

func resumenDePrueba(t *testing.T) analytics.CustomerSummary {
	t.Helper()
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.January, 10), "VG1", "A1", 2, 1000, 600),
		fila(1, fecha(2024, time.January, 12), "VG1", "A2", 1, 500, 250),
		fila(2, fecha(2024, time.February, 3), "", "A1", 3, 750, 400),
		fila(3, fecha(2024, time.March, 20), "VG2", "", 1, 250, 100),
	}
	return analytics.BuildCustomerSummary(rows, 1001)
}

// TestToPublicSummary_SinRastroDeCostoNiMargen serializa la proyección pública
// completa y verifica que ningún nombre de campo asociado a costo o margen
// aparece en el JSON resultante. Es el contrato de redacción: el PDF de
// cliente y la vista cliente de la UI consumen exactamente esta estructura.
func TestToPublicSummary_SinRastroDeCostoNiMargen(t *testing.T) {
	public := analytics.ToPublicSummary(resumenDePrueba(t))

	raw, err := json.Marshal(public)
	require.NoError(t, err)

	serializado := strings.ToLower(string(raw))
	for _, prohibido := range []string{"cost", "margin", "kostnad", "marginal"} {
		assert.NotContains(t, serializado, prohibido,
			"ningún campo derivado de costo puede alcanzar la proyección pública")
	}
}

// TestToPublicSummary_ValoresIgualesAlResumenCompleto verifica que todo campo
// presente en la proyección conserva exactamente el valor del resumen origen.
func TestToPublicSummary_ValoresIgualesAlResumenCompleto(t *testing.T) {
	summary := resumenDePrueba(t)
	public := analytics.ToPublicSummary(summary)

	assert.Equal(t, summary.CustomerID, public.CustomerID)
	assert.Equal(t, summary.Period, public.Period)

	assert.True(t, public.KPIs.TotalSales.Equal(summary.KPIs.TotalSales))
	assert.Equal(t, summary.KPIs.OrderCount, public.KPIs.OrderCount)
	assert.Equal(t, summary.KPIs.LineCount, public.KPIs.LineCount)
	assert.True(t, public.KPIs.AverageOrderValue.Equal(summary.KPIs.AverageOrderValue))

	require.Len(t, public.MonthlySales, len(summary.MonthlySales))
	for i, m := range public.MonthlySales {
		assert.Equal(t, summary.MonthlySales[i].Label, m.Label)
		assert.Equal(t, summary.MonthlySales[i].Year, m.Year)
		assert.Equal(t, summary.MonthlySales[i].Month, m.Month)
		assert.True(t, m.Sales.Equal(summary.MonthlySales[i].Sales))
		assert.Equal(t, summary.MonthlySales[i].OrderCount, m.OrderCount)
	}

	require.Len(t, public.TopCategories, len(summary.TopCategories))
	for i, c := range public.TopCategories {
		assert.Equal(t, summary.TopCategories[i].CategoryCode, c.CategoryCode)
		assert.True(t, c.Sales.Equal(summary.TopCategories[i].Sales))
		assert.True(t, c.Quantity.Equal(summary.TopCategories[i].Quantity))
	}

	require.Len(t, public.TopProducts, len(summary.TopProducts))
	for i, p := range public.TopProducts {
		assert.Equal(t, summary.TopProducts[i].ProductCode, p.ProductCode)
		assert.Equal(t, summary.TopProducts[i].CategoryCode, p.CategoryCode)
		assert.True(t, p.Sales.Equal(summary.TopProducts[i].Sales))
		assert.True(t, p.Quantity.Equal(summary.TopProducts[i].Quantity))
	}

	require.Len(t, public.Sites, len(summary.Sites))
	for i, s := range public.Sites {
		assert.Equal(t, summary.Sites[i].Site, s.Site)
		assert.True(t, s.TotalSales.Equal(summary.Sites[i].TotalSales))
		assert.Equal(t, summary.Sites[i].OrderCount, s.OrderCount)
	}
}

func TestToPublicSiteSummaries_SinMargen(t *testing.T) {
	summary := resumenDePrueba(t)
	public := analytics.ToPublicSiteSummaries(summary.Sites)

	raw, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "margin")
}
