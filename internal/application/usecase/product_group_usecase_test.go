package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// repoGruposEnMemoria implementación en memoria para probar el caso de uso.
type repoGruposEnMemoria struct {
	groups map[string]entity.ProductGroup
}

func nuevoRepoGrupos() *repoGruposEnMemoria {
	return &repoGruposEnMemoria{groups: make(map[string]entity.ProductGroup)}
}

func (r *repoGruposEnMemoria) Create(_ context.Context, g *entity.ProductGroup) error {
	if _, ok := r.groups[g.ID]; ok {
		return domain.ErrDuplicate
	}
	r.groups[g.ID] = *g
	return nil
}

func (r *repoGruposEnMemoria) GetByID(_ context.Context, id string) (*entity.ProductGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *repoGruposEnMemoria) List(_ context.Context, limit, offset int) ([]*entity.ProductGroup, error) {
	ids := make([]string, 0, len(r.groups))
	for id := range r.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.ProductGroup, 0)
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		g := r.groups[id]
		out = append(out, &g)
	}
	return out, nil
}

func (r *repoGruposEnMemoria) Update(_ context.Context, g *entity.ProductGroup) error {
	if _, ok := r.groups[g.ID]; !ok {
		return domain.ErrNotFound
	}
	r.groups[g.ID] = *g
	return nil
}

func (r *repoGruposEnMemoria) Delete(_ context.Context, id string) error {
	if _, ok := r.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *repoGruposEnMemoria) Upsert(_ context.Context, g *entity.ProductGroup) error {
	r.groups[g.ID] = *g
	return nil
}

// cacheEspia cuenta las invalidaciones tras escrituras de referencia.
type cacheEspia struct{ invalidations int }

func (c *cacheEspia) Invalidate() { c.invalidations++ }

func TestCreateGrupoValidaEInvalida(t *testing.T) {
	cache := &cacheEspia{}
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), cache)

	group, err := uc.Create(context.Background(), dto.CreateProductGroupRequest{
		ID: "VG01", Name: "Verktyg",
	})
	require.NoError(t, err)

	assert.Equal(t, "VG01", group.ID)
	assert.True(t, group.Active, "sin bandera explícita el grupo queda activo")
	assert.Equal(t, 1, cache.invalidations)
}

func TestCreateGrupoSinIDEsInvalido(t *testing.T) {
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), nil)

	_, err := uc.Create(context.Background(), dto.CreateProductGroupRequest{Name: "Verktyg"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateGrupoDuplicado(t *testing.T) {
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), nil)
	_, err := uc.Create(context.Background(), dto.CreateProductGroupRequest{ID: "VG01", Name: "Verktyg"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductGroupRequest{ID: "VG01", Name: "Otro"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGetByIDGrupoAusente(t *testing.T) {
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), nil)

	group, err := uc.GetByID(context.Background(), "VG99")

	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestUpdateGrupoParcial(t *testing.T) {
	cache := &cacheEspia{}
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), cache)
	_, err := uc.Create(context.Background(), dto.CreateProductGroupRequest{
		ID: "VG01", Name: "Verktyg", Description: "herramientas",
	})
	require.NoError(t, err)

	name := "Verktyg & maskiner"
	group, err := uc.Update(context.Background(), "VG01", dto.UpdateProductGroupRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Verktyg & maskiner", group.Name)
	assert.Equal(t, "herramientas", group.Description, "los campos no enviados no cambian")
	assert.Equal(t, 2, cache.invalidations)
}

func TestUpdateGrupoAusente(t *testing.T) {
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), nil)

	name := "x"
	_, err := uc.Update(context.Background(), "VG99", dto.UpdateProductGroupRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportGruposReportaFilasInvalidas(t *testing.T) {
	cache := &cacheEspia{}
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), cache)

	res := uc.Import(context.Background(), []entity.ProductGroup{
		{ID: "VG01", Name: "Verktyg"},
		{ID: "", Name: "sin id"},
		{ID: "VG02", Name: "Färg"},
		{ID: "VG03"}, // sin nombre
	})

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 2, res.Errors[0].Line)
	assert.Equal(t, 4, res.Errors[1].Line)
	assert.NotEmpty(t, res.BatchID)
	assert.Equal(t, 1, cache.invalidations)
}

func TestImportGruposEsUpsert(t *testing.T) {
	repo := nuevoRepoGrupos()
	uc := NewProductGroupUseCase(repo, nil)
	uc.Import(context.Background(), []entity.ProductGroup{{ID: "VG01", Name: "Verktyg"}})

	res := uc.Import(context.Background(), []entity.ProductGroup{{ID: "VG01", Name: "Verktyg 2"}})

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, "Verktyg 2", repo.groups["VG01"].Name)
}

func TestListGruposPaginado(t *testing.T) {
	uc := NewProductGroupUseCase(nuevoRepoGrupos(), nil)
	for _, id := range []string{"VG03", "VG01", "VG02"} {
		_, err := uc.Create(context.Background(), dto.CreateProductGroupRequest{ID: id, Name: "g " + id})
		require.NoError(t, err)
	}

	list, err := uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "VG02", list.Items[0].ID)
	assert.Equal(t, "VG03", list.Items[1].ID)
}
