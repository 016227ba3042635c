// Package content administra el contenido editable de la tienda: banners,
// páginas estáticas, preguntas frecuentes y la sección "nosotros".
package content

import (
	"context"
	"strings"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/jhoicas/boutique-api/pkg/slug"
)

// ContentUseCase CRUD del CMS y lecturas públicas.
type ContentUseCase struct {
	banners repository.BannerRepository
	pages   repository.PageRepository
	faqs    repository.FAQRepository
	about   repository.AboutRepository
}

func NewContentUseCase(
	banners repository.BannerRepository,
	pages repository.PageRepository,
	faqs repository.FAQRepository,
	about repository.AboutRepository,
) *ContentUseCase {
	return &ContentUseCase{banners: banners, pages: pages, faqs: faqs, about: about}
}

// ── banners ──────────────────────────────────────────────────────────────────

func (uc *ContentUseCase) CreateBanner(ctx context.Context, in dto.BannerRequest) (*dto.BannerResponse, error) {
	b := &entity.Banner{Activo: true}
	applyBanner(b, in)
	if err := uc.banners.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBannerResponse(b), nil
}

func (uc *ContentUseCase) UpdateBanner(ctx context.Context, id int64, in dto.BannerRequest) (*dto.BannerResponse, error) {
	b, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	applyBanner(b, in)
	if err := uc.banners.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBannerResponse(b), nil
}

func (uc *ContentUseCase) DeleteBanner(ctx context.Context, id int64) error {
	return uc.banners.Delete(ctx, id)
}

// ListBanners ordenados por Orden; onlyActive para la tienda.
func (uc *ContentUseCase) ListBanners(ctx context.Context, onlyActive bool) ([]dto.BannerResponse, error) {
	list, err := uc.banners.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBannerResponse(b))
	}
	return out, nil
}

func applyBanner(b *entity.Banner, in dto.BannerRequest) {
	b.Titulo = strings.TrimSpace(in.Titulo)
	b.Subtitulo = strings.TrimSpace(in.Subtitulo)
	b.ImagenURL = strings.TrimSpace(in.ImagenURL)
	b.Enlace = strings.TrimSpace(in.Enlace)
	b.Orden = in.Orden
	if in.Activo != nil {
		b.Activo = *in.Activo
	}
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID,
		Titulo:    b.Titulo,
		Subtitulo: b.Subtitulo,
		ImagenURL: b.ImagenURL,
		Enlace:    b.Enlace,
		Orden:     b.Orden,
		Activo:    b.Activo,
	}
}

// ── páginas ──────────────────────────────────────────────────────────────────

// CreatePage genera el slug desde el título si no viene; un slug ocupado devuelve ErrDuplicate.
func (uc *ContentUseCase) CreatePage(ctx context.Context, in dto.PageContentRequest) (*dto.PageContentResponse, error) {
	p := &entity.Page{}
	if err := uc.applyPage(ctx, p, in); err != nil {
		return nil, err
	}
	if err := uc.pages.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPageResponse(p), nil
}

func (uc *ContentUseCase) UpdatePage(ctx context.Context, id int64, in dto.PageContentRequest) (*dto.PageContentResponse, error) {
	p, err := uc.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyPage(ctx, p, in); err != nil {
		return nil, err
	}
	if err := uc.pages.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPageResponse(p), nil
}

func (uc *ContentUseCase) DeletePage(ctx context.Context, id int64) error {
	return uc.pages.Delete(ctx, id)
}

func (uc *ContentUseCase) ListPages(ctx context.Context) ([]dto.PageContentResponse, error) {
	list, err := uc.pages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PageContentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPageResponse(p))
	}
	return out, nil
}

// PublishedPage página pública por slug; las no publicadas no existen para la tienda.
func (uc *ContentUseCase) PublishedPage(ctx context.Context, s string) (*dto.PageContentResponse, error) {
	p, err := uc.pages.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Publicada {
		return nil, domain.ErrNotFound
	}
	return toPageResponse(p), nil
}

func (uc *ContentUseCase) applyPage(ctx context.Context, p *entity.Page, in dto.PageContentRequest) error {
	want := slug.Make(in.Slug)
	if want == "" {
		want = slug.Make(in.Titulo)
	}
	if want == "" {
		return domain.ErrInvalidInput
	}
	if want != p.Slug {
		other, err := uc.pages.GetBySlug(ctx, want)
		if err != nil {
			return err
		}
		if other != nil && other.ID != p.ID {
			return domain.ErrDuplicate
		}
	}
	p.Slug = want
	p.Titulo = strings.TrimSpace(in.Titulo)
	p.Contenido = in.Contenido
	p.Publicada = in.Publicada
	return nil
}

func toPageResponse(p *entity.Page) *dto.PageContentResponse {
	return &dto.PageContentResponse{
		ID:        p.ID,
		Slug:      p.Slug,
		Titulo:    p.Titulo,
		Contenido: p.Contenido,
		Publicada: p.Publicada,
		UpdatedAt: p.UpdatedAt,
	}
}

// ── preguntas frecuentes ─────────────────────────────────────────────────────

func (uc *ContentUseCase) CreateFAQ(ctx context.Context, in dto.FAQRequest) (*dto.FAQResponse, error) {
	f := &entity.FAQ{Activo: true}
	applyFAQ(f, in)
	if err := uc.faqs.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFAQResponse(f), nil
}

func (uc *ContentUseCase) UpdateFAQ(ctx context.Context, id int64, in dto.FAQRequest) (*dto.FAQResponse, error) {
	f, err := uc.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	applyFAQ(f, in)
	if err := uc.faqs.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFAQResponse(f), nil
}

func (uc *ContentUseCase) DeleteFAQ(ctx context.Context, id int64) error {
	return uc.faqs.Delete(ctx, id)
}

func (uc *ContentUseCase) ListFAQs(ctx context.Context, onlyActive bool) ([]dto.FAQResponse, error) {
	list, err := uc.faqs.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FAQResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFAQResponse(f))
	}
	return out, nil
}

func applyFAQ(f *entity.FAQ, in dto.FAQRequest) {
	f.Pregunta = strings.TrimSpace(in.Pregunta)
	f.Respuesta = strings.TrimSpace(in.Respuesta)
	f.Orden = in.Orden
	if in.Activo != nil {
		f.Activo = *in.Activo
	}
}

func toFAQResponse(f *entity.FAQ) *dto.FAQResponse {
	return &dto.FAQResponse{ID: f.ID, Pregunta: f.Pregunta, Respuesta: f.Respuesta, Orden: f.Orden, Activo: f.Activo}
}

// ── nosotros ─────────────────────────────────────────────────────────────────

// About devuelve la sección vacía si nunca se guardó.
func (uc *ContentUseCase) About(ctx context.Context) (*dto.AboutResponse, error) {
	a, err := uc.about.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toAboutResponse(a), nil
}

func (uc *ContentUseCase) SaveAbout(ctx context.Context, in dto.AboutRequest) (*dto.AboutResponse, error) {
	a := &entity.About{
		Titulo:    strings.TrimSpace(in.Titulo),
		Contenido: in.Contenido,
		ImagenURL: strings.TrimSpace(in.ImagenURL),
	}
	if err := uc.about.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return toAboutResponse(a), nil
}

func toAboutResponse(a *entity.About) *dto.AboutResponse {
	return &dto.AboutResponse{Titulo: a.Titulo, Contenido: a.Contenido, ImagenURL: a.ImagenURL, UpdatedAt: a.UpdatedAt}
}
