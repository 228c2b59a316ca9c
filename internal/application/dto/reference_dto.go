package dto

import "time"

// ── Grupos de artículos (varugrupp) ──────────────────────────────────────────

// CreateProductGroupRequest alta de un grupo en la tabla de referencia.
type CreateProductGroupRequest struct {
	ID          string `json:"id" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
	Active      *bool  `json:"active"` // nil -> activo
}

// UpdateProductGroupRequest modificación parcial de un grupo.
type UpdateProductGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// ProductGroupResponse representación HTTP de un grupo.
type ProductGroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductGroupListResponse listado paginado de grupos.
type ProductGroupListResponse struct {
	Items  []ProductGroupResponse `json:"items"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// ── Artículos (artikel) ──────────────────────────────────────────────────────

// CreateArticleRequest alta de un artículo en la tabla maestra.
type CreateArticleRequest struct {
	Number          string `json:"number" validate:"required,max=30"`
	GroupID         string `json:"group_id" validate:"max=20"`
	Text            string `json:"text" validate:"required,max=300"`
	SupplierAccount int    `json:"supplier_account" validate:"min=0"`
	Active          *bool  `json:"active"`
}

// UpdateArticleRequest modificación parcial de un artículo.
type UpdateArticleRequest struct {
	GroupID         *string `json:"group_id" validate:"omitempty,max=20"`
	Text            *string `json:"text" validate:"omitempty,max=300"`
	SupplierAccount *int    `json:"supplier_account" validate:"omitempty,min=0"`
	Active          *bool   `json:"active"`
}

// ArticleResponse representación HTTP de un artículo.
type ArticleResponse struct {
	Number          string    `json:"number"`
	GroupID         string    `json:"group_id"`
	Text            string    `json:"text"`
	SupplierAccount int       `json:"supplier_account"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ArticleListResponse listado paginado de artículos.
type ArticleListResponse struct {
	Items  []ArticleResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ── Importación masiva ───────────────────────────────────────────────────────

// ImportError detalle de una fila rechazada durante la importación.
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResponse resultado de una importación masiva de referencia.
type ImportResponse struct {
	BatchID  string        `json:"batch_id"`
	Imported int           `json:"imported"`
	Failed   int           `json:"failed"`
	Errors   []ImportError `json:"errors,omitempty"`
}
