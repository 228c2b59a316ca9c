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

// Invalidator permite descartar etiquetas cacheadas tras una escritura de
// referencia (lo implementa labels.Cache).
type Invalidator interface {
	Invalidate()
}

// ProductGroupUseCase CRUD e importación masiva de grupos de artículos.
type ProductGroupUseCase struct {
	repo     repository.ProductGroupRepository
	cache    Invalidator
	validate *validator.Validate
}

// NewProductGroupUseCase construye el caso de uso.
func NewProductGroupUseCase(repo repository.ProductGroupRepository, cache Invalidator) *ProductGroupUseCase {
	return &ProductGroupUseCase{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
	}
}

// Create da de alta un grupo.
func (uc *ProductGroupUseCase) Create(ctx context.Context, in dto.CreateProductGroupRequest) (*dto.ProductGroupResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	group := &entity.ProductGroup{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Active:      in.Active == nil || *in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	uc.invalidate()
	return groupToResponse(group), nil
}

// GetByID obtiene un grupo; nil sin error si no existe (el handler decide 404).
func (uc *ProductGroupUseCase) GetByID(ctx context.Context, id string) (*dto.ProductGroupResponse, error) {
	group, err := uc.repo.GetByID(ctx, id)
	if err != nil || group == nil {
		return nil, err
	}
	return groupToResponse(group), nil
}

// List devuelve la página pedida ordenada por código.
func (uc *ProductGroupUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductGroupListResponse, error) {
	page.DefaultPage()
	groups, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductGroupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, *groupToResponse(g))
	}
	return &dto.ProductGroupListResponse{Items: items, Limit: page.Limit, Offset: page.Offset}, nil
}

// Update aplica una modificación parcial.
func (uc *ProductGroupUseCase) Update(ctx context.Context, id string, in dto.UpdateProductGroupRequest) (*dto.ProductGroupResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	group, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		group.Name = *in.Name
	}
	if in.Description != nil {
		group.Description = *in.Description
	}
	if in.Active != nil {
		group.Active = *in.Active
	}
	group.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, group); err != nil {
		return nil, err
	}
	uc.invalidate()
	return groupToResponse(group), nil
}

// Delete elimina un grupo por código.
func (uc *ProductGroupUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// Import upsert fila a fila de los grupos parseados del CSV de referencia.
// No es atómico: las filas válidas quedan aunque otras fallen; cada fallo se
// reporta con su número de línea.
func (uc *ProductGroupUseCase) Import(ctx context.Context, groups []entity.ProductGroup) *dto.ImportResponse {
	res := &dto.ImportResponse{BatchID: uuid.NewString()}
	now := time.Now()
	for i := range groups {
		g := groups[i]
		if g.ID == "" || g.Name == "" {
			res.Failed++
			res.Errors = append(res.Errors, dto.ImportError{Line: i + 1, Message: "id y nombre son requeridos"})
			continue
		}
		g.CreatedAt = now
		g.UpdatedAt = now
		if err := uc.repo.Upsert(ctx, &g); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, dto.ImportError{Line: i + 1, Message: err.Error()})
			continue
		}
		res.Imported++
	}
	uc.invalidate()
	return res
}

func (uc *ProductGroupUseCase) invalidate() {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
}

func groupToResponse(g *entity.ProductGroup) *dto.ProductGroupResponse {
	return &dto.ProductGroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
