package dto

import "time"

// UploadDatasetResponse resultado de cargar un export CSV de pedidos.
// La carga reemplaza por completo el dataset anterior de la sesión.
type UploadDatasetResponse struct {
	BatchID       string    `json:"batch_id"` // identificador de la carga, solo para logs/trazas
	FileName      string    `json:"file_name"`
	RowCount      int       `json:"row_count"`
	CustomerCount int       `json:"customer_count"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// CustomerListResponse clientes distintos presentes en el dataset, ascendentes.
type CustomerListResponse struct {
	Customers []int `json:"customers"`
	Total     int   `json:"total"`
}
