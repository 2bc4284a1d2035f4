package contracts

import (
	"context"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
)

// SessionRepo keeps the open authoring sessions, one Draft Store each.
// Sessions live in memory only.
type SessionRepo interface {
	// Create opens a session with the given editing defaults.
	Create(ctx context.Context, id string, defaults domain.Session) (*store.Store, error)

	// With runs fn with exclusive access to the session's store.
	// It returns domain.ErrDraftNotFound for unknown ids.
	With(ctx context.Context, id string, fn func(s *store.Store) error) error

	// Delete closes the session.
	Delete(ctx context.Context, id string) error

	// IDs lists the open sessions in lexical order.
	IDs() []string
}
