package ports

import "context"

// LabelResolver resuelve códigos crudos del export a etiquetas legibles usando
// las tablas de referencia. La resolución es solo de presentación: la
// agrupación y el orden del motor operan siempre sobre códigos crudos.
// Si el código no existe en la referencia se devuelve el código sin cambios.
type LabelResolver interface {
	CategoryLabel(ctx context.Context, code string) string
	ProductLabel(ctx context.Context, code string) string
}
