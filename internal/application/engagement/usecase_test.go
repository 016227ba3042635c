package engagement_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/engagement"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

type memSubscribers struct {
	byEmail map[string]*entity.Subscriber
}

func (m *memSubscribers) Upsert(_ context.Context, s *entity.Subscriber) error {
	if cur, ok := m.byEmail[s.Email]; ok {
		cur.Activo = true
		*s = *cur
		return nil
	}
	s.ID = int64(len(m.byEmail) + 1)
	s.Activo = true
	cp := *s
	m.byEmail[s.Email] = &cp
	return nil
}
func (m *memSubscribers) Deactivate(_ context.Context, token string) (bool, error) {
	for _, s := range m.byEmail {
		if s.Token == token {
			s.Activo = false
			return true, nil
		}
	}
	return false, nil
}
func (m *memSubscribers) List(context.Context, bool, int, int) ([]*entity.Subscriber, error) {
	return nil, nil
}

func TestSubscribe_IdempotentePorEmail(t *testing.T) {
	ctx := context.Background()
	subs := &memSubscribers{byEmail: map[string]*entity.Subscriber{}}
	uc := engagement.NewEngagementUseCase(subs, nil)

	first, err := uc.Subscribe(ctx, dto.SubscribeRequest{Email: "Clienta@Mail.com"})
	require.NoError(t, err)
	second, err := uc.Subscribe(ctx, dto.SubscribeRequest{Email: "clienta@mail.com "})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, subs.byEmail, 1)

	token := subs.byEmail["clienta@mail.com"].Token
	_, err = uuid.Parse(token)
	require.NoError(t, err)

	require.NoError(t, uc.Unsubscribe(ctx, token))
	assert.False(t, subs.byEmail["clienta@mail.com"].Activo)

	_, err = uc.Subscribe(ctx, dto.SubscribeRequest{Email: "clienta@mail.com"})
	require.NoError(t, err)
	assert.True(t, subs.byEmail["clienta@mail.com"].Activo)
	assert.Equal(t, token, subs.byEmail["clienta@mail.com"].Token)
}

func TestUnsubscribe_TokenInvalido(t *testing.T) {
	uc := engagement.NewEngagementUseCase(&memSubscribers{byEmail: map[string]*entity.Subscriber{}}, nil)
	assert.ErrorIs(t, uc.Unsubscribe(context.Background(), "no-es-uuid"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Unsubscribe(context.Background(), uuid.NewString()), domain.ErrNotFound)
}
