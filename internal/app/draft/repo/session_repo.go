package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
)

type sessionEntry struct {
	mu     sync.Mutex
	store  *store.Store
	closed bool
}

// SessionRepo is the in-memory registry of authoring sessions. Each session
// has its own lock, so independent drafts never wait on each other.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	clock    clock.Clock
}

func NewSessionRepo(clk clock.Clock) *SessionRepo {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &SessionRepo{
		sessions: make(map[string]*sessionEntry),
		clock:    clk,
	}
}

func (r *SessionRepo) Create(ctx context.Context, id string, defaults domain.Session) (*store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return nil, fmt.Errorf("session %s already exists", id)
	}
	st := store.New(domain.NewDraft(id, defaults, r.clock.Now()), r.clock)
	r.sessions[id] = &sessionEntry{store: st}
	return st, nil
}

func (r *SessionRepo) With(ctx context.Context, id string, fn func(s *store.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	entry, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrDraftNotFound)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return fmt.Errorf("session %s: %w", id, domain.ErrDraftNotFound)
	}
	return fn(entry.store)
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrDraftNotFound)
	}

	entry.mu.Lock()
	entry.closed = true
	entry.mu.Unlock()
	return nil
}

// IDs lists the open sessions in lexical order.
func (r *SessionRepo) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
