// Package engagement newsletter y formulario de contacto.
package engagement

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// EngagementUseCase suscripciones y mensajes de contacto.
type EngagementUseCase struct {
	subscribers repository.SubscriberRepository
	contacts    repository.ContactRepository
}

func NewEngagementUseCase(subscribers repository.SubscriberRepository, contacts repository.ContactRepository) *EngagementUseCase {
	return &EngagementUseCase{subscribers: subscribers, contacts: contacts}
}

// Subscribe es idempotente por email: repetirlo reactiva la suscripción y conserva el token.
func (uc *EngagementUseCase) Subscribe(ctx context.Context, in dto.SubscribeRequest) (*dto.SubscriberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Subscriber{Email: email, Token: uuid.NewString()}
	if err := uc.subscribers.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return toSubscriberResponse(s), nil
}

// Unsubscribe da de baja por token. Tokens mal formados o desconocidos devuelven ErrNotFound.
func (uc *EngagementUseCase) Unsubscribe(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.subscribers.Deactivate(ctx, strings.ToLower(token))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *EngagementUseCase) ListSubscribers(ctx context.Context, onlyActive bool, limit, offset int) ([]dto.SubscriberResponse, error) {
	list, err := uc.subscribers.List(ctx, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubscriberResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSubscriberResponse(s))
	}
	return out, nil
}

func (uc *EngagementUseCase) SendContact(ctx context.Context, in dto.ContactRequest) (*dto.ContactResponse, error) {
	m := &entity.ContactMessage{
		Nombre:   strings.TrimSpace(in.Nombre),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Telefono: strings.TrimSpace(in.Telefono),
		Asunto:   strings.TrimSpace(in.Asunto),
		Mensaje:  strings.TrimSpace(in.Mensaje),
	}
	if m.Mensaje == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.contacts.Create(ctx, m); err != nil {
		return nil, err
	}
	return toContactResponse(m), nil
}

func (uc *EngagementUseCase) MarkRead(ctx context.Context, id int64) error {
	ok, err := uc.contacts.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *EngagementUseCase) ListContacts(ctx context.Context, onlyUnread bool, limit, offset int) ([]dto.ContactResponse, error) {
	list, err := uc.contacts.List(ctx, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toContactResponse(m))
	}
	return out, nil
}

func toSubscriberResponse(s *entity.Subscriber) *dto.SubscriberResponse {
	return &dto.SubscriberResponse{ID: s.ID, Email: s.Email, Activo: s.Activo, CreatedAt: s.CreatedAt}
}

func toContactResponse(m *entity.ContactMessage) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        m.ID,
		Nombre:    m.Nombre,
		Email:     m.Email,
		Telefono:  m.Telefono,
		Asunto:    m.Asunto,
		Mensaje:   m.Mensaje,
		Leido:     m.Leido,
		CreatedAt: m.CreatedAt,
	}
}
