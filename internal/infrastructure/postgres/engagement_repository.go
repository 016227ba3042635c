package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var (
	_ repository.SubscriberRepository = (*SubscriberRepo)(nil)
	_ repository.ContactRepository    = (*ContactRepo)(nil)
)

// SubscriberRepo persistencia del newsletter.
type SubscriberRepo struct {
	q Querier
}

func NewSubscriberRepository(q Querier) *SubscriberRepo {
	return &SubscriberRepo{q: q}
}

// Upsert inserta o reactiva por email. Un suscriptor existente conserva su token.
func (r *SubscriberRepo) Upsert(ctx context.Context, s *entity.Subscriber) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	err := r.q.QueryRow(ctx, `
		INSERT INTO newsletter_subscribers (email, token) VALUES ($1, $2::TEXT::UUID)
		ON CONFLICT (email) DO UPDATE SET activo = TRUE
		RETURNING id, token::TEXT, activo, created_at`,
		s.Email, s.Token,
	).Scan(&s.ID, &s.Token, &s.Activo, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}

// Deactivate da de baja por token; false si el token no existe.
func (r *SubscriberRepo) Deactivate(ctx context.Context, token string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE newsletter_subscribers SET activo = FALSE WHERE token::TEXT = $1`, token)
	if err != nil {
		return false, fmt.Errorf("deactivate subscriber: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SubscriberRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Subscriber, error) {
	query := `SELECT id, email, token::TEXT, activo, created_at FROM newsletter_subscribers`
	if onlyActive {
		query += ` WHERE activo = TRUE`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limitOr(limit, 100, 1000), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Subscriber, 0)
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Token, &s.Activo, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ContactRepo persistencia de mensajes de contacto.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO contact_messages (nombre, email, telefono, asunto, mensaje)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, leido, created_at`,
		m.Nombre, m.Email, m.Telefono, m.Asunto, m.Mensaje,
	).Scan(&m.ID, &m.Leido, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// MarkRead false si el mensaje no existe.
func (r *ContactRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE contact_messages SET leido = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark message read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ContactRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.ContactMessage, error) {
	query := `SELECT id, nombre, email, telefono, asunto, mensaje, leido, created_at FROM contact_messages`
	if onlyUnread {
		query += ` WHERE leido = FALSE`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limitOr(limit, 50, 200), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ContactMessage, 0)
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Email, &m.Telefono, &m.Asunto, &m.Mensaje, &m.Leido, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
