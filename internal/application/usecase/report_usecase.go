package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// Variantes del informe PDF.
const (
	ReportVariantCustomer = "customer" // vista cliente, sin costo ni margen
	ReportVariantInternal = "internal" // archivo interno, datos completos
)

// ReportUseCase genera el informe PDF de un cliente en una de sus dos
// variantes. La variante de cliente se construye desde la proyección pública,
// de modo que el generador nunca ve los campos sensibles.
type ReportUseCase struct {
	summaries *SummaryUseCase
	pdf       ports.ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(summaries *SummaryUseCase, pdf ports.ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{summaries: summaries, pdf: pdf}
}

// Generate produce el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) Generate(ctx context.Context, customerID int, variant string) ([]byte, string, error) {
	switch variant {
	case ReportVariantCustomer:
		public, err := uc.summaries.GetPublicSummary(ctx, customerID)
		if err != nil {
			return nil, "", err
		}
		doc, err := uc.pdf.GenerateCustomerReport(ctx, *public)
		if err != nil {
			return nil, "", fmt.Errorf("informe de cliente: %w", err)
		}
		return doc, fmt.Sprintf("kundanalys_%d.pdf", customerID), nil

	case ReportVariantInternal:
		summary, err := uc.summaries.GetSummary(ctx, customerID)
		if err != nil {
			return nil, "", err
		}
		doc, err := uc.pdf.GenerateInternalReport(ctx, *summary)
		if err != nil {
			return nil, "", fmt.Errorf("informe interno: %w", err)
		}
		return doc, fmt.Sprintf("kundanalys_intern_%d.pdf", customerID), nil

	default:
		return nil, "", fmt.Errorf("%w: variante de informe %q", domain.ErrInvalidInput, variant)
	}
}
