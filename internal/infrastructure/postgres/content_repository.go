package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var (
	_ repository.BannerRepository = (*BannerRepo)(nil)
	_ repository.PageRepository   = (*PageRepo)(nil)
	_ repository.FAQRepository    = (*FAQRepo)(nil)
	_ repository.AboutRepository  = (*AboutRepo)(nil)
)

// BannerRepo persistencia de banners de portada.
type BannerRepo struct {
	q Querier
}

func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

func (r *BannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO banners (titulo, subtitulo, imagen_url, enlace, orden, activo)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		b.Titulo, b.Subtitulo, b.ImagenURL, b.Enlace, b.Orden, b.Activo,
	).Scan(&b.ID)
	return insertErr("insert banner", err)
}

func (r *BannerRepo) GetByID(ctx context.Context, id int64) (*entity.Banner, error) {
	var b entity.Banner
	err := r.q.QueryRow(ctx, `SELECT id, titulo, subtitulo, imagen_url, enlace, orden, activo FROM banners WHERE id = $1`, id).
		Scan(&b.ID, &b.Titulo, &b.Subtitulo, &b.ImagenURL, &b.Enlace, &b.Orden, &b.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

func (r *BannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE banners SET titulo = $2, subtitulo = $3, imagen_url = $4, enlace = $5, orden = $6, activo = $7
		WHERE id = $1`,
		b.ID, b.Titulo, b.Subtitulo, b.ImagenURL, b.Enlace, b.Orden, b.Activo)
	if err != nil {
		return insertErr("update banner", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BannerRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "banners", id)
}

func (r *BannerRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Banner, error) {
	query := `SELECT id, titulo, subtitulo, imagen_url, enlace, orden, activo FROM banners`
	if onlyActive {
		query += ` WHERE activo = TRUE`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY orden, id`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Banner, 0)
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Titulo, &b.Subtitulo, &b.ImagenURL, &b.Enlace, &b.Orden, &b.Activo); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// PageRepo persistencia de páginas estáticas.
type PageRepo struct {
	q Querier
}

func NewPageRepository(q Querier) *PageRepo {
	return &PageRepo{q: q}
}

func (r *PageRepo) Create(ctx context.Context, p *entity.Page) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO pages (slug, titulo, contenido, publicada) VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at`,
		p.Slug, p.Titulo, p.Contenido, p.Publicada,
	).Scan(&p.ID, &p.UpdatedAt)
	return insertErr("insert page", err)
}

func (r *PageRepo) GetByID(ctx context.Context, id int64) (*entity.Page, error) {
	return r.getOne(ctx, `SELECT id, slug, titulo, contenido, publicada, updated_at FROM pages WHERE id = $1`, id)
}

func (r *PageRepo) GetBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	return r.getOne(ctx, `SELECT id, slug, titulo, contenido, publicada, updated_at FROM pages WHERE slug = $1`, slug)
}

func (r *PageRepo) getOne(ctx context.Context, query string, arg any) (*entity.Page, error) {
	var p entity.Page
	err := r.q.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Slug, &p.Titulo, &p.Contenido, &p.Publicada, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	return &p, nil
}

func (r *PageRepo) Update(ctx context.Context, p *entity.Page) error {
	err := r.q.QueryRow(ctx, `
		UPDATE pages SET slug = $2, titulo = $3, contenido = $4, publicada = $5, updated_at = now()
		WHERE id = $1 RETURNING updated_at`,
		p.ID, p.Slug, p.Titulo, p.Contenido, p.Publicada,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return insertErr("update page", err)
}

func (r *PageRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "pages", id)
}

func (r *PageRepo) List(ctx context.Context) ([]*entity.Page, error) {
	rows, err := r.q.Query(ctx, `SELECT id, slug, titulo, contenido, publicada, updated_at FROM pages ORDER BY titulo`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Page, 0)
	for rows.Next() {
		var p entity.Page
		if err := rows.Scan(&p.ID, &p.Slug, &p.Titulo, &p.Contenido, &p.Publicada, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// FAQRepo persistencia de preguntas frecuentes.
type FAQRepo struct {
	q Querier
}

func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

func (r *FAQRepo) Create(ctx context.Context, f *entity.FAQ) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO faqs (pregunta, respuesta, orden, activo) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.Pregunta, f.Respuesta, f.Orden, f.Activo,
	).Scan(&f.ID)
	return insertErr("insert faq", err)
}

func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*entity.FAQ, error) {
	var f entity.FAQ
	err := r.q.QueryRow(ctx, `SELECT id, pregunta, respuesta, orden, activo FROM faqs WHERE id = $1`, id).
		Scan(&f.ID, &f.Pregunta, &f.Respuesta, &f.Orden, &f.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get faq: %w", err)
	}
	return &f, nil
}

func (r *FAQRepo) Update(ctx context.Context, f *entity.FAQ) error {
	cmd, err := r.q.Exec(ctx, `UPDATE faqs SET pregunta = $2, respuesta = $3, orden = $4, activo = $5 WHERE id = $1`,
		f.ID, f.Pregunta, f.Respuesta, f.Orden, f.Activo)
	if err != nil {
		return insertErr("update faq", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FAQRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "faqs", id)
}

func (r *FAQRepo) List(ctx context.Context, onlyActive bool) ([]*entity.FAQ, error) {
	query := `SELECT id, pregunta, respuesta, orden, activo FROM faqs`
	if onlyActive {
		query += ` WHERE activo = TRUE`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY orden, id`)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.FAQ, 0)
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(&f.ID, &f.Pregunta, &f.Respuesta, &f.Orden, &f.Activo); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// AboutRepo sección "nosotros", fila única id = 1.
type AboutRepo struct {
	q Querier
}

func NewAboutRepository(q Querier) *AboutRepo {
	return &AboutRepo{q: q}
}

// Get devuelve un About vacío si la fila aún no existe.
func (r *AboutRepo) Get(ctx context.Context) (*entity.About, error) {
	var a entity.About
	err := r.q.QueryRow(ctx, `SELECT titulo, contenido, imagen_url, updated_at FROM about WHERE id = 1`).
		Scan(&a.Titulo, &a.Contenido, &a.ImagenURL, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.About{}, nil
		}
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &a, nil
}

func (r *AboutRepo) Upsert(ctx context.Context, a *entity.About) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO about (id, titulo, contenido, imagen_url, updated_at) VALUES (1, $1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET titulo = EXCLUDED.titulo, contenido = EXCLUDED.contenido,
		       imagen_url = EXCLUDED.imagen_url, updated_at = now()
		RETURNING updated_at`,
		a.Titulo, a.Contenido, a.ImagenURL,
	).Scan(&a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert about: %w", err)
	}
	return nil
}
