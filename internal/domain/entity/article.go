package entity

import "time"

// Article representa un artículo (artikel) de la tabla maestra de referencia.
// Number es el código tal como aparece en el export de pedidos.
type Article struct {
	Number          string // artikelnummer, único
	GroupID         string // código del grupo de artículos; vacío si no está clasificado
	Text            string // descripción comercial
	SupplierAccount int    // número de cuenta del proveedor; 0 si no aplica
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
