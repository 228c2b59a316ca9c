package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ArticleRepository acceso a la tabla maestra de artículos.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByNumber(ctx context.Context, number string) (*entity.Article, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, number string) error
	// Upsert inserta o actualiza por número de artículo; usado por la importación masiva.
	Upsert(ctx context.Context, article *entity.Article) error
}
