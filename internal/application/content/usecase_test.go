package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/content"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

type memPages struct {
	byID map[int64]*entity.Page
}

func (m *memPages) Create(_ context.Context, p *entity.Page) error {
	p.ID = int64(len(m.byID) + 1)
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}
func (m *memPages) GetByID(_ context.Context, id int64) (*entity.Page, error) {
	if p, ok := m.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (m *memPages) GetBySlug(_ context.Context, s string) (*entity.Page, error) {
	for _, p := range m.byID {
		if p.Slug == s {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memPages) Update(_ context.Context, p *entity.Page) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}
func (m *memPages) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memPages) List(context.Context) ([]*entity.Page, error) { return nil, nil }

type memAbout struct{ a *entity.About }

func (m *memAbout) Get(context.Context) (*entity.About, error) {
	if m.a == nil {
		return &entity.About{}, nil
	}
	return m.a, nil
}
func (m *memAbout) Upsert(_ context.Context, a *entity.About) error {
	m.a = a
	return nil
}

func TestPages_SlugYPublicacion(t *testing.T) {
	ctx := context.Background()
	uc := content.NewContentUseCase(nil, &memPages{byID: map[int64]*entity.Page{}}, nil, &memAbout{})

	p, err := uc.CreatePage(ctx, dto.PageContentRequest{Titulo: "Cambios y Devoluciones", Contenido: "30 días"})
	require.NoError(t, err)
	assert.Equal(t, "cambios-y-devoluciones", p.Slug)

	_, err = uc.PublishedPage(ctx, "cambios-y-devoluciones")
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrador no visible en la tienda")

	_, err = uc.UpdatePage(ctx, p.ID, dto.PageContentRequest{Titulo: "Cambios y Devoluciones", Publicada: true})
	require.NoError(t, err)
	pub, err := uc.PublishedPage(ctx, "cambios-y-devoluciones")
	require.NoError(t, err)
	assert.True(t, pub.Publicada)

	_, err = uc.CreatePage(ctx, dto.PageContentRequest{Slug: "Cambios y devoluciones", Titulo: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAbout_VacioYUpsert(t *testing.T) {
	ctx := context.Background()
	uc := content.NewContentUseCase(nil, nil, nil, &memAbout{})

	a, err := uc.About(ctx)
	require.NoError(t, err)
	assert.Empty(t, a.Titulo)

	_, err = uc.SaveAbout(ctx, dto.AboutRequest{Titulo: " Nuestra historia ", Contenido: "Desde 2015"})
	require.NoError(t, err)
	a, err = uc.About(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nuestra historia", a.Titulo)
}
