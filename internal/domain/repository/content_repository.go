package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// BannerRepository define el puerto de persistencia para banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id int64) (*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]*entity.Banner, error)
}

// PageRepository define el puerto de persistencia para páginas.
type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	GetByID(ctx context.Context, id int64) (*entity.Page, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Page, error)
	Update(ctx context.Context, page *entity.Page) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Page, error)
}

// FAQRepository define el puerto de persistencia para preguntas frecuentes.
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, id int64) (*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]*entity.FAQ, error)
}

// AboutRepository sección "nosotros" (registro único).
type AboutRepository interface {
	Get(ctx context.Context) (*entity.About, error)
	Upsert(ctx context.Context, about *entity.About) error
}

// SubscriberRepository define el puerto de persistencia del newsletter.
type SubscriberRepository interface {
	// Upsert reactiva al suscriptor si ya existía y devuelve su registro.
	Upsert(ctx context.Context, sub *entity.Subscriber) error
	Deactivate(ctx context.Context, token string) (bool, error)
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Subscriber, error)
}

// ContactRepository define el puerto de persistencia de mensajes de contacto.
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	MarkRead(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.ContactMessage, error)
}
