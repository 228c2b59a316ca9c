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

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO artikel (artikelnummer, varugrupp_id, artikeltext, leverantor_kontonummer, aktiv, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, 0), $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		article.Number, article.GroupID, article.Text, article.SupplierAccount,
		article.Active, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert artikel: %w", err)
	}
	return nil
}

// GetByNumber obtiene un artículo por número; nil sin error si no existe.
func (r *ArticleRepo) GetByNumber(ctx context.Context, number string) (*entity.Article, error) {
	query := `
		SELECT artikelnummer, COALESCE(varugrupp_id, ''), artikeltext,
		       COALESCE(leverantor_kontonummer, 0), aktiv, created_at, updated_at
		FROM artikel WHERE artikelnummer = $1`
	var a entity.Article
	err := r.q.QueryRow(ctx, query, number).Scan(
		&a.Number, &a.GroupID, &a.Text, &a.SupplierAccount, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artikel: %w", err)
	}
	return &a, nil
}

// List lista artículos ordenados por número con paginación.
func (r *ArticleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT artikelnummer, COALESCE(varugrupp_id, ''), artikeltext,
		       COALESCE(leverantor_kontonummer, 0), aktiv, created_at, updated_at
		FROM artikel ORDER BY artikelnummer LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artikel: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.Number, &a.GroupID, &a.Text, &a.SupplierAccount, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan artikel: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un artículo.
func (r *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	query := `
		UPDATE artikel
		SET varugrupp_id = NULLIF($2, ''), artikeltext = $3,
		    leverantor_kontonummer = NULLIF($4, 0), aktiv = $5, updated_at = $6
		WHERE artikelnummer = $1`
	_, err := r.q.Exec(ctx, query,
		article.Number, article.GroupID, article.Text, article.SupplierAccount,
		article.Active, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update artikel: %w", err)
	}
	return nil
}

// Delete elimina un artículo por número.
func (r *ArticleRepo) Delete(ctx context.Context, number string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM artikel WHERE artikelnummer = $1`, number)
	if err != nil {
		return fmt.Errorf("delete artikel: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza por número (importación masiva).
func (r *ArticleRepo) Upsert(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO artikel (artikelnummer, varugrupp_id, artikeltext, leverantor_kontonummer, aktiv, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, 0), $5, $6, $7)
		ON CONFLICT (artikelnummer) DO UPDATE
		SET varugrupp_id = EXCLUDED.varugrupp_id,
		    artikeltext = EXCLUDED.artikeltext,
		    leverantor_kontonummer = EXCLUDED.leverantor_kontonummer,
		    aktiv = EXCLUDED.aktiv,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		article.Number, article.GroupID, article.Text, article.SupplierAccount,
		article.Active, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert artikel: %w", err)
	}
	return nil
}
