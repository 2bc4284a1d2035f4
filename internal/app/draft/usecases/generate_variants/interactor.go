package generate_variants

import (
	"context"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	shared "github.com/murkotick/product-draft-service/internal/app/draft/usecases/shared"
)

// Request to expand the draft's attributes into variations.
// When Attributes is non-nil it replaces the draft's attributes first.
type Request struct {
	DraftID    string
	Attributes []domain.Attribute
}

type Interactor struct {
	Sessions  contracts.SessionRepo
	Generator *services.VariantGenerator
}

func NewInteractor(sessions contracts.SessionRepo, generator *services.VariantGenerator) *Interactor {
	if generator == nil {
		generator = services.NewVariantGenerator(nil)
	}
	return &Interactor{
		Sessions:  sessions,
		Generator: generator,
	}
}

// Execute returns the number of generated variants. Zero means the
// attributes held no valid option and the variations were left as they were.
// When generation fails the draft, including its attributes, is unchanged.
func (it *Interactor) Execute(ctx context.Context, req Request) (int, error) {
	var count int
	err := it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		if s.IsSubmitting() {
			return domain.ErrSubmissionInProgress
		}

		attrs := req.Attributes
		if attrs == nil {
			attrs = s.Snapshot().Product.Attributes
		}
		variants, err := it.Generator.Generate(attrs, s.VariantTemplate())
		if err != nil {
			return err
		}

		if req.Attributes != nil {
			s.SetAttributes(req.Attributes)
		}
		if s.ApplyGeneratedVariants(variants) {
			count = len(variants)
		}
		shared.LogEvents(s.DrainEvents())
		return nil
	})
	return count, err
}
