package start_draft

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	shared "github.com/murkotick/product-draft-service/internal/app/draft/usecases/shared"
)

// Request opens a new authoring session. Nil fields fall back to the
// service defaults.
type Request struct {
	Language *domain.Language
	Currency *domain.Currency
}

type Interactor struct {
	Sessions contracts.SessionRepo
	Defaults domain.Session
}

func NewInteractor(sessions contracts.SessionRepo, defaults domain.Session) *Interactor {
	return &Interactor{
		Sessions: sessions,
		Defaults: defaults,
	}
}

// Execute returns the id of the new session.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	defaults := it.Defaults
	if req.Language != nil {
		defaults.ActiveLanguage = *req.Language
	}
	if req.Currency != nil {
		defaults.ActiveCurrency = *req.Currency
	}
	defaults.Submitting = false
	defaults.Errors = map[string]string{}

	draftID := uuid.New().String()
	st, err := it.Sessions.Create(ctx, draftID, defaults)
	if err != nil {
		return "", err
	}

	shared.LogEvents(st.DrainEvents())
	return draftID, nil
}
