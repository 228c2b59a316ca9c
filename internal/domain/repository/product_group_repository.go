package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ProductGroupRepository acceso a la tabla de referencia de grupos de artículos.
type ProductGroupRepository interface {
	Create(ctx context.Context, group *entity.ProductGroup) error
	GetByID(ctx context.Context, id string) (*entity.ProductGroup, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ProductGroup, error)
	Update(ctx context.Context, group *entity.ProductGroup) error
	Delete(ctx context.Context, id string) error
	// Upsert inserta o actualiza por ID; usado por la importación masiva.
	Upsert(ctx context.Context, group *entity.ProductGroup) error
}
