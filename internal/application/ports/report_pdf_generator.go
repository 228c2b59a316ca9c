package ports

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
)

// ReportPDFGenerator genera los dos variantes del informe de cliente.
//
// La variante de cliente recibe únicamente la proyección pública: el costo y
// el margen no existen en ese tipo, así que el generador no puede filtrarlos
// ni por accidente. La variante interna (archivo) recibe el resumen completo.
type ReportPDFGenerator interface {
	GenerateCustomerReport(ctx context.Context, summary analytics.PublicCustomerSummary) ([]byte, error)
	GenerateInternalReport(ctx context.Context, summary analytics.CustomerSummary) ([]byte, error)
}
