package close_draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/repo"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
)

func TestClose_RemovesSession(t *testing.T) {
	ctx := context.Background()
	sessions := repo.NewSessionRepo(clock.RealClock{})
	_, err := sessions.Create(ctx, "d1", domain.DefaultSession())
	require.NoError(t, err)

	it := NewInteractor(sessions)
	require.NoError(t, it.Execute(ctx, Request{DraftID: "d1"}))
	assert.Empty(t, sessions.IDs())

	err = it.Execute(ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestClose_RejectedWhileSubmitting(t *testing.T) {
	ctx := context.Background()
	sessions := repo.NewSessionRepo(clock.RealClock{})
	_, err := sessions.Create(ctx, "d1", domain.DefaultSession())
	require.NoError(t, err)
	require.NoError(t, sessions.With(ctx, "d1", func(s *store.Store) error {
		s.SetSubmitting(true)
		return nil
	}))

	err = NewInteractor(sessions).Execute(ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrSubmissionInProgress)
	assert.Equal(t, []string{"d1"}, sessions.IDs())
}
