package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ArticleUseCase CRUD e importación masiva de la tabla maestra de artículos.
type ArticleUseCase struct {
	repo     repository.ArticleRepository
	cache    Invalidator
	validate *validator.Validate
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository, cache Invalidator) *ArticleUseCase {
	return &ArticleUseCase{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
	}
}

// Create da de alta un artículo.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	article := &entity.Article{
		Number:          in.Number,
		GroupID:         in.GroupID,
		Text:            in.Text,
		SupplierAccount: in.SupplierAccount,
		Active:          in.Active == nil || *in.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	uc.invalidate()
	return articleToResponse(article), nil
}

// GetByNumber obtiene un artículo; nil sin error si no existe.
func (uc *ArticleUseCase) GetByNumber(ctx context.Context, number string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByNumber(ctx, number)
	if err != nil || article == nil {
		return nil, err
	}
	return articleToResponse(article), nil
}

// List devuelve la página pedida ordenada por número de artículo.
func (uc *ArticleUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	page.DefaultPage()
	articles, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, *articleToResponse(a))
	}
	return &dto.ArticleListResponse{Items: items, Limit: page.Limit, Offset: page.Offset}, nil
}

// Update aplica una modificación parcial.
func (uc *ArticleUseCase) Update(ctx context.Context, number string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	article, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.GroupID != nil {
		article.GroupID = *in.GroupID
	}
	if in.Text != nil {
		article.Text = *in.Text
	}
	if in.SupplierAccount != nil {
		article.SupplierAccount = *in.SupplierAccount
	}
	if in.Active != nil {
		article.Active = *in.Active
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	uc.invalidate()
	return articleToResponse(article), nil
}

// Delete elimina un artículo por número.
func (uc *ArticleUseCase) Delete(ctx context.Context, number string) error {
	if err := uc.repo.Delete(ctx, number); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// Import upsert fila a fila de los artículos parseados del CSV de referencia.
func (uc *ArticleUseCase) Import(ctx context.Context, articles []entity.Article) *dto.ImportResponse {
	res := &dto.ImportResponse{BatchID: uuid.NewString()}
	now := time.Now()
	for i := range articles {
		a := articles[i]
		if a.Number == "" || a.Text == "" {
			res.Failed++
			res.Errors = append(res.Errors, dto.ImportError{Line: i + 1, Message: "número y texto son requeridos"})
			continue
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := uc.repo.Upsert(ctx, &a); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, dto.ImportError{Line: i + 1, Message: err.Error()})
			continue
		}
		res.Imported++
	}
	uc.invalidate()
	return res
}

func (uc *ArticleUseCase) invalidate() {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
}

func articleToResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		Number:          a.Number,
		GroupID:         a.GroupID,
		Text:            a.Text,
		SupplierAccount: a.SupplierAccount,
		Active:          a.Active,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
