package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// fila construye una fila de pedido mínima para los tests del motor.
func fila(orderID int, fecha time.Time, grupo, articulo string, cantidad, venta, costo float64) entity.OrderRow {
	return entity.OrderRow{
		CustomerID:     1001,
		OrderID:        orderID,
		InvoiceDate:    fecha,
		Quantity:       decimal.NewFromFloat(cantidad),
		CategoryCode:   grupo,
		ProductCode:    articulo,
		InvoicedAmount: decimal.NewFromFloat(venta),
		CostAmount:     decimal.NewFromFloat(costo),
	}
}

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// igual compara decimales por valor, no por representación interna.
func igual(t *testing.T, esperado string, actual decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(esperado)),
		"%s: esperado %s, actual %s", msg, esperado, actual)
}

func TestComputeKPIs_PedidosDistintosNoFilas(t *testing.T) {
	// Dos filas del mismo pedido (dos artículos) + una fila de otro pedido.
	rows := []entity.OrderRow{
		fila(500, fecha(2024, time.March, 1), "VG1", "A1", 1, 100, 60),
		fila(500, fecha(2024, time.March, 1), "VG1", "A2", 2, 200, 120),
		fila(501, fecha(2024, time.March, 2), "VG2", "A3", 1, 300, 150),
	}

	kpis := analytics.ComputeKPIs(rows)

	assert.Equal(t, 2, kpis.OrderCount, "pedidos distintos, no filas")
	assert.Equal(t, 3, kpis.LineCount)
	igual(t, "600", kpis.TotalSales, "venta total")
	igual(t, "330", kpis.TotalCost, "costo total")
	igual(t, "270", kpis.Margin, "margen")
	igual(t, "300", kpis.AverageOrderValue, "valor medio de pedido = 600 / 2")
	igual(t, "45", kpis.MarginPercent, "270 / 600 * 100")
}

func TestComputeKPIs_ConjuntoVacioSinDivisionPorCero(t *testing.T) {
	kpis := analytics.ComputeKPIs(nil)

	assert.Equal(t, 0, kpis.OrderCount)
	assert.Equal(t, 0, kpis.LineCount)
	igual(t, "0", kpis.TotalSales, "venta total")
	igual(t, "0", kpis.AverageOrderValue, "sin pedidos -> 0, no NaN ni pánico")
	igual(t, "0", kpis.MarginPercent, "sin ventas -> 0, no NaN ni pánico")
}

func TestComputeKPIs_MontosNegativosPorDevoluciones(t *testing.T) {
	// Las devoluciones llegan con montos negativos y se suman tal cual.
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.May, 10), "VG1", "A1", 2, 1000, 600),
		fila(2, fecha(2024, time.May, 12), "VG1", "A1", -1, -500, -300),
	}

	kpis := analytics.ComputeKPIs(rows)

	igual(t, "500", kpis.TotalSales, "venta neta")
	igual(t, "300", kpis.TotalCost, "costo neto")
	igual(t, "200", kpis.Margin, "margen neto")
}

func TestComputeMonthlySeries_OrdenCronologicoEntreAnios(t *testing.T) {
	// Diciembre del año Y debe preceder a enero del año Y+1.
	rows := []entity.OrderRow{
		fila(3, fecha(2025, time.January, 5), "VG1", "A1", 1, 300, 100),
		fila(1, fecha(2024, time.December, 20), "VG1", "A1", 1, 100, 50),
		fila(2, fecha(2024, time.December, 28), "VG1", "A2", 1, 200, 80),
	}

	series := analytics.ComputeMonthlySeries(rows)

	require.Len(t, series, 2)
	assert.Equal(t, 2024, series[0].Year)
	assert.Equal(t, 12, series[0].Month)
	assert.Equal(t, "dec", series[0].Label)
	assert.Equal(t, 2025, series[1].Year)
	assert.Equal(t, 1, series[1].Month)
	assert.Equal(t, "jan", series[1].Label)
}

func TestComputeMonthlySeries_PedidosDistintosPorBucket(t *testing.T) {
	// El mismo pedido con dos filas en el mismo mes cuenta una sola vez;
	// el conteo por bucket es independiente del conteo global.
	rows := []entity.OrderRow{
		fila(10, fecha(2024, time.June, 1), "VG1", "A1", 1, 100, 50),
		fila(10, fecha(2024, time.June, 2), "VG1", "A2", 1, 150, 70),
		fila(11, fecha(2024, time.July, 1), "VG1", "A1", 1, 200, 90),
	}

	series := analytics.ComputeMonthlySeries(rows)

	require.Len(t, series, 2)
	assert.Equal(t, 1, series[0].OrderCount, "junio: un solo pedido en dos filas")
	assert.Equal(t, 1, series[1].OrderCount)
	igual(t, "250", series[0].Sales, "ventas de junio")
	igual(t, "120", series[0].Cost, "costo de junio")
}

func TestComputeMonthlySeries_ConservacionDeTotales(t *testing.T) {
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.January, 1), "VG1", "A1", 1, 111.25, 60),
		fila(2, fecha(2024, time.February, 1), "VG2", "A2", 1, 222.50, 100),
		fila(3, fecha(2024, time.March, 1), "VG3", "A3", 1, 333.75, 140),
	}

	kpis := analytics.ComputeKPIs(rows)
	series := analytics.ComputeMonthlySeries(rows)

	var sumaVentas, sumaCosto decimal.Decimal
	for _, b := range series {
		sumaVentas = sumaVentas.Add(b.Sales)
		sumaCosto = sumaCosto.Add(b.Cost)
	}
	assert.True(t, sumaVentas.Equal(kpis.TotalSales), "la serie mensual conserva la venta total")
	assert.True(t, sumaCosto.Equal(kpis.TotalCost), "la serie mensual conserva el costo total")
}

func TestComputeCategorySummary_CentinelaParaGrupoVacio(t *testing.T) {
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.April, 1), "", "A1", 2, 100, 40),
		fila(2, fecha(2024, time.April, 2), "VG1", "A2", 1, 50, 20),
	}

	grupos := analytics.ComputeCategorySummary(rows)

	require.Len(t, grupos, 2)
	// La fila sin grupo contribuye exactamente una vez al bucket centinela.
	assert.Equal(t, analytics.UnknownGroup, grupos[0].CategoryCode)
	igual(t, "100", grupos[0].Sales, "ventas del centinela")
	igual(t, "2", grupos[0].Quantity, "cantidad del centinela")
	igual(t, "60", grupos[0].Margin, "margen del centinela = 100 - 40")
}

func TestComputeCategorySummary_ConservacionSinTruncado(t *testing.T) {
	// Con menos de 10 grupos no hay truncado: la suma por grupos debe
	// reconciliar exactamente con los KPIs globales.
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.April, 1), "VG1", "A1", 1, 100.10, 40),
		fila(2, fecha(2024, time.April, 2), "VG2", "A2", 1, 200.20, 80),
		fila(3, fecha(2024, time.April, 3), "", "A3", 1, 300.30, 120),
		fila(4, fecha(2024, time.April, 4), "VG1", "A4", 1, 55.55, 20),
	}

	kpis := analytics.ComputeKPIs(rows)
	grupos := analytics.ComputeCategorySummary(rows)

	var sumaVentas, sumaCosto decimal.Decimal
	for _, g := range grupos {
		sumaVentas = sumaVentas.Add(g.Sales)
		sumaCosto = sumaCosto.Add(g.Cost)
	}
	assert.True(t, sumaVentas.Equal(kpis.TotalSales), "cierre: grupos vs venta total")
	assert.True(t, sumaCosto.Equal(kpis.TotalCost), "cierre: grupos vs costo total")
}

func TestComputeCategorySummary_Top10Determinista(t *testing.T) {
	// 12 grupos con ventas estrictamente decrecientes: el resultado son
	// exactamente los 10 mayores, en orden descendente.
	var rows []entity.OrderRow
	for i := 0; i < 12; i++ {
		rows = append(rows, fila(i+1, fecha(2024, time.May, 1), groupName(i), "A1", 1, float64(1200-i*100), 10))
	}

	grupos := analytics.ComputeCategorySummary(rows)

	require.Len(t, grupos, 10)
	assert.Equal(t, "VG00", grupos[0].CategoryCode)
	assert.Equal(t, "VG09", grupos[9].CategoryCode)
	for i := 1; i < len(grupos); i++ {
		assert.True(t, grupos[i-1].Sales.GreaterThan(grupos[i].Sales),
			"orden descendente por ventas en la posición %d", i)
	}
}

func TestComputeCategorySummary_EmpateConservaOrdenDeAparicion(t *testing.T) {
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.May, 1), "VGB", "A1", 1, 100, 10),
		fila(2, fecha(2024, time.May, 1), "VGA", "A2", 1, 100, 10),
	}

	grupos := analytics.ComputeCategorySummary(rows)

	require.Len(t, grupos, 2)
	assert.Equal(t, "VGB", grupos[0].CategoryCode, "a ventas iguales gana la primera aparición")
	assert.Equal(t, "VGA", grupos[1].CategoryCode)
}

func TestComputeProductSummary_PoliticaPrimeraAparicionDelGrupo(t *testing.T) {
	// El mismo artículo aparece bajo dos grupos distintos: se fija el primero.
	rows := []entity.OrderRow{
		fila(1, fecha(2024, time.June, 1), "VG1", "A9", 1, 100, 40),
		fila(2, fecha(2024, time.June, 2), "VG2", "A9", 1, 200, 80),
	}

	productos := analytics.ComputeProductSummary(rows)

	require.Len(t, productos, 1)
	assert.Equal(t, "VG1", productos[0].CategoryCode, "primera aparición, no la última")
	igual(t, "300", productos[0].Sales, "las filas se suman en un solo artículo")
}

func TestComputeProductSummary_Top15YCentinela(t *testing.T) {
	var rows []entity.OrderRow
	for i := 0; i < 17; i++ {
		rows = append(rows, fila(i+1, fecha(2024, time.June, 1), "VG1", productName(i), 1, float64(1700-i*100), 10))
	}
	rows = append(rows, fila(99, fecha(2024, time.June, 2), "VG1", "", 1, 5000, 10))

	productos := analytics.ComputeProductSummary(rows)

	require.Len(t, productos, 15)
	assert.Equal(t, analytics.UnknownGroup, productos[0].ProductCode,
		"el centinela participa del ranking como cualquier artículo")
}

func TestComputeSiteSummaries_AscendentePorStalle(t *testing.T) {
	mk := func(site, order int, venta, costo float64) entity.OrderRow {
		r := fila(order, fecha(2024, time.July, 1), "VG1", "A1", 1, venta, costo)
		r.Site = site
		return r
	}
	rows := []entity.OrderRow{
		mk(30, 1, 300, 100),
		mk(10, 2, 100, 40),
		mk(10, 2, 150, 60), // mismo pedido, segunda línea
		mk(20, 3, 200, 90),
	}

	sitios := analytics.ComputeSiteSummaries(rows)

	require.Len(t, sitios, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{sitios[0].Site, sitios[1].Site, sitios[2].Site})
	assert.Equal(t, 1, sitios[0].OrderCount, "pedidos distintos por sitio")
	igual(t, "250", sitios[0].TotalSales, "ventas del ställe 10")
	igual(t, "150", sitios[0].Margin, "margen del ställe 10")
}

func groupName(i int) string {
	return "VG" + twoDigits(i)
}

func productName(i int) string {
	return "ART" + twoDigits(i)
}

func twoDigits(i int) string {
	return string([]byte{'0' + byte(i/10), '0' + byte(i%10)})
}
