package close_draft

import (
	"context"
	"log"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
)

// Request for closing an authoring session
type Request struct {
	DraftID string
}

type Interactor struct {
	Sessions contracts.SessionRepo
}

func NewInteractor(sessions contracts.SessionRepo) *Interactor {
	return &Interactor{Sessions: sessions}
}

// Execute removes the session. Unsaved edits are lost; a session with a
// submission in flight cannot be closed.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	var dirty bool
	err := it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		if s.IsSubmitting() {
			return domain.ErrSubmissionInProgress
		}
		dirty = s.Snapshot().Dirty
		return nil
	})
	if err != nil {
		return err
	}

	if err := it.Sessions.Delete(ctx, req.DraftID); err != nil {
		return err
	}
	if dirty {
		log.Printf("draft %s closed with unsaved changes", req.DraftID)
	}
	return nil
}
