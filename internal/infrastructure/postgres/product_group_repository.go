package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductGroupRepository = (*ProductGroupRepo)(nil)

// ProductGroupRepo implementación de ProductGroupRepository (usable con pool o tx).
type ProductGroupRepo struct {
	q Querier
}

// NewProductGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductGroupRepository(q Querier) *ProductGroupRepo {
	return &ProductGroupRepo{q: q}
}

// Create persiste un grupo nuevo.
func (r *ProductGroupRepo) Create(ctx context.Context, group *entity.ProductGroup) error {
	query := `
		INSERT INTO varugrupp (varugrupp_id, varugrupp_namn, beskrivning, aktiv, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		group.ID, group.Name, group.Description, group.Active, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert varugrupp: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por código; nil sin error si no existe.
func (r *ProductGroupRepo) GetByID(ctx context.Context, id string) (*entity.ProductGroup, error) {
	query := `
		SELECT varugrupp_id, varugrupp_namn, beskrivning, aktiv, created_at, updated_at
		FROM varugrupp WHERE varugrupp_id = $1`
	var g entity.ProductGroup
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get varugrupp: %w", err)
	}
	return &g, nil
}

// List lista grupos ordenados por código con paginación.
func (r *ProductGroupRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductGroup, error) {
	query := `
		SELECT varugrupp_id, varugrupp_namn, beskrivning, aktiv, created_at, updated_at
		FROM varugrupp ORDER BY varugrupp_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list varugrupp: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductGroup
	for rows.Next() {
		var g entity.ProductGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Active, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan varugrupp: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un grupo.
func (r *ProductGroupRepo) Update(ctx context.Context, group *entity.ProductGroup) error {
	query := `
		UPDATE varugrupp SET varugrupp_namn = $2, beskrivning = $3, aktiv = $4, updated_at = $5
		WHERE varugrupp_id = $1`
	_, err := r.q.Exec(ctx, query,
		group.ID, group.Name, group.Description, group.Active, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update varugrupp: %w", err)
	}
	return nil
}

// Delete elimina un grupo por código.
func (r *ProductGroupRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM varugrupp WHERE varugrupp_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete varugrupp: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza por código (importación masiva).
func (r *ProductGroupRepo) Upsert(ctx context.Context, group *entity.ProductGroup) error {
	query := `
		INSERT INTO varugrupp (varugrupp_id, varugrupp_namn, beskrivning, aktiv, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (varugrupp_id) DO UPDATE
		SET varugrupp_namn = EXCLUDED.varugrupp_namn,
		    beskrivning = EXCLUDED.beskrivning,
		    aktiv = EXCLUDED.aktiv,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		group.ID, group.Name, group.Description, group.Active, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert varugrupp: %w", err)
	}
	return nil
}
