package entity

import "time"

// ProductGroup representa un grupo de artículos (varugrupp) de la tabla de referencia.
// El ID es el código tal como aparece en el export de pedidos.
type ProductGroup struct {
	ID          string // código del grupo, único
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
