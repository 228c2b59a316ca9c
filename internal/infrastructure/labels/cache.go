// Package labels resuelve códigos del export a etiquetas legibles usando las
// tablas de referencia, con un caché read-through explícito.
//
// El caché es un objeto inyectado, no estado global: se construye en main y se
// pasa a quien necesite resolver etiquetas. La población es insert-if-absent
// y las escrituras de administración lo invalidan completo (las tablas de
// referencia son pequeñas y cambian poco).
package labels

import (
	"context"
	"sync"

	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

var _ ports.LabelResolver = (*Cache)(nil)

// Cache caché read-through de etiquetas de grupos y artículos.
type Cache struct {
	groups   repository.ProductGroupRepository
	articles repository.ArticleRepository
	log      *logger.Logger

	mu            sync.RWMutex
	groupLabels   map[string]string
	articleLabels map[string]string
}

// NewCache construye el caché vacío.
func NewCache(groups repository.ProductGroupRepository, articles repository.ArticleRepository, log *logger.Logger) *Cache {
	return &Cache{
		groups:        groups,
		articles:      articles,
		log:           log,
		groupLabels:   make(map[string]string),
		articleLabels: make(map[string]string),
	}
}

// CategoryLabel devuelve "código — nombre" si el grupo existe y está activo;
// si no, el código sin cambios. Nunca falla: un error de la tabla de
// referencia degrada a código crudo.
func (c *Cache) CategoryLabel(ctx context.Context, code string) string {
	if code == "" {
		return code
	}
	if label, ok := c.lookup(&c.groupLabels, code); ok {
		return label
	}

	label := code
	group, err := c.groups.GetByID(ctx, code)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Str("varugrupp", code).Msg("resolución de etiqueta de grupo")
		return code // no cachear errores: el próximo acceso reintenta
	case group != nil && group.Active && group.Name != "":
		label = code + " — " + group.Name
	}

	c.store(&c.groupLabels, code, label)
	return label
}

// ProductLabel devuelve el texto del artículo si existe y está activo; si no,
// el número de artículo sin cambios.
func (c *Cache) ProductLabel(ctx context.Context, code string) string {
	if code == "" {
		return code
	}
	if label, ok := c.lookup(&c.articleLabels, code); ok {
		return label
	}

	label := code
	article, err := c.articles.GetByNumber(ctx, code)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Str("artikel", code).Msg("resolución de etiqueta de artículo")
		return code
	case article != nil && article.Active && article.Text != "":
		label = article.Text
	}

	c.store(&c.articleLabels, code, label)
	return label
}

// Invalidate descarta todas las etiquetas cacheadas. Lo llaman los casos de
// uso de administración tras cualquier escritura de referencia.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.groupLabels = make(map[string]string)
	c.articleLabels = make(map[string]string)
	c.mu.Unlock()
}

func (c *Cache) lookup(m *map[string]string, code string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	label, ok := (*m)[code]
	return label, ok
}

// store inserta solo si sigue ausente (insert-if-absent): ante una carrera
// gana la primera resolución y las demás se descartan.
func (c *Cache) store(m *map[string]string, code, label string) {
	c.mu.Lock()
	if _, ok := (*m)[code]; !ok {
		(*m)[code] = label
	}
	c.mu.Unlock()
}
