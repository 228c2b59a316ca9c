package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/analytics"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// DatasetUseCase mantiene el dataset de la sesión: las filas del último export
// CSV cargado. No hay persistencia; cargar un archivo nuevo descarta el
// anterior y todo lo derivado se recalcula bajo demanda.
//
// Las filas son inmutables tras el parseo, así que las lecturas comparten el
// slice sin copiarlo; el RWMutex solo protege el intercambio de dataset.
type DatasetUseCase struct {
	mu       sync.RWMutex
	rows     []entity.OrderRow
	fileName string
	loadedAt time.Time
}

// NewDatasetUseCase construye el caso de uso con dataset vacío.
func NewDatasetUseCase() *DatasetUseCase {
	return &DatasetUseCase{}
}

// Replace sustituye el dataset completo por las filas del archivo recién
// parseado y devuelve el resumen de la carga.
func (uc *DatasetUseCase) Replace(rows []entity.OrderRow, fileName string) dto.UploadDatasetResponse {
	uc.mu.Lock()
	uc.rows = rows
	uc.fileName = fileName
	uc.loadedAt = time.Now()
	loadedAt := uc.loadedAt
	uc.mu.Unlock()

	return dto.UploadDatasetResponse{
		BatchID:       uuid.NewString(),
		FileName:      fileName,
		RowCount:      len(rows),
		CustomerCount: len(analytics.ListDistinctCustomers(rows)),
		LoadedAt:      loadedAt,
	}
}

// Clear descarta el dataset de la sesión.
func (uc *DatasetUseCase) Clear() {
	uc.mu.Lock()
	uc.rows = nil
	uc.fileName = ""
	uc.loadedAt = time.Time{}
	uc.mu.Unlock()
}

// Rows devuelve las filas del dataset actual (nil si no hay carga).
func (uc *DatasetUseCase) Rows() []entity.OrderRow {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.rows
}

// Empty indica si no hay archivo cargado.
func (uc *DatasetUseCase) Empty() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.rows) == 0
}

// Customers devuelve los clientes distintos del dataset, ascendentes.
func (uc *DatasetUseCase) Customers() dto.CustomerListResponse {
	customers := analytics.ListDistinctCustomers(uc.Rows())
	return dto.CustomerListResponse{Customers: customers, Total: len(customers)}
}
