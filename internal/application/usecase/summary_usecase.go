package usecase

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
)

// SummaryUseCase construye el resumen por cliente sobre el dataset de la
// sesión y resuelve las etiquetas de presentación contra las tablas de
// referencia. La vista pública pasa SIEMPRE por analytics.ToPublicSummary:
// ningún otro punto decide qué campos son sensibles.
type SummaryUseCase struct {
	dataset *DatasetUseCase
	labels  ports.LabelResolver
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(dataset *DatasetUseCase, labels ports.LabelResolver) *SummaryUseCase {
	return &SummaryUseCase{dataset: dataset, labels: labels}
}

// GetSummary devuelve el resumen completo (vista interna) del cliente.
// Errores: domain.ErrNoDataset sin archivo cargado, domain.ErrNotFound si el
// cliente no tiene filas en el dataset.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, customerID int) (*analytics.CustomerSummary, error) {
	if uc.dataset.Empty() {
		return nil, domain.ErrNoDataset
	}
	rows := analytics.FilterByCustomer(uc.dataset.Rows(), customerID)
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	summary := analytics.BuildCustomerSummary(rows, customerID)
	uc.resolveLabels(ctx, &summary)
	return &summary, nil
}

// GetPublicSummary devuelve la proyección pública (vista cliente) del resumen.
func (uc *SummaryUseCase) GetPublicSummary(ctx context.Context, customerID int) (*analytics.PublicCustomerSummary, error) {
	summary, err := uc.GetSummary(ctx, customerID)
	if err != nil {
		return nil, err
	}
	public := analytics.ToPublicSummary(*summary)
	return &public, nil
}

// resolveLabels completa las etiquetas legibles de grupos y artículos.
// Solo presentación: se aplica después de agrupar y ordenar, nunca antes.
func (uc *SummaryUseCase) resolveLabels(ctx context.Context, summary *analytics.CustomerSummary) {
	if uc.labels == nil {
		return
	}
	for i := range summary.TopCategories {
		summary.TopCategories[i].Label = uc.labels.CategoryLabel(ctx, summary.TopCategories[i].CategoryCode)
	}
	for i := range summary.TopProducts {
		summary.TopProducts[i].Label = uc.labels.ProductLabel(ctx, summary.TopProducts[i].ProductCode)
	}
}
