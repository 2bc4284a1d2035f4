package discard_draft

import (
	"context"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	shared "github.com/murkotick/product-draft-service/internal/app/draft/usecases/shared"
)

// Request for discarding every edit of a draft
type Request struct {
	DraftID string
}

type Interactor struct {
	Sessions contracts.SessionRepo
}

func NewInteractor(sessions contracts.SessionRepo) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	return it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		if s.IsSubmitting() {
			return domain.ErrSubmissionInProgress
		}
		s.ResetDraft()
		shared.LogEvents(s.DrainEvents())
		return nil
	})
}
