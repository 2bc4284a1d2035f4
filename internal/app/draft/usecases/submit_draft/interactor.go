package submit_draft

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	shared "github.com/murkotick/product-draft-service/internal/app/draft/usecases/shared"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/validate_draft"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
	commitplan "github.com/murkotick/product-draft-service/internal/pkg/committer"
)

// Request to hand a draft off to the catalog
type Request struct {
	DraftID string
	Publish bool // submit with status PUBLISHED instead of the draft's own status
}

// Response carries the new catalog product id on success, or the
// localized validation errors when the draft was rejected.
type Response struct {
	ProductID string
	Errors    map[string]string
}

type Interactor struct {
	Sessions    contracts.SessionRepo
	CatalogRepo contracts.CatalogRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.CatalogReadModel
	Labels      contracts.Labels
	Validator   *services.DraftValidator
	Clock       clock.Clock
}

func NewInteractor(sessions contracts.SessionRepo, catalogRepo contracts.CatalogRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.CatalogReadModel, labels contracts.Labels, clk clock.Clock) *Interactor {
	return &Interactor{
		Sessions:    sessions,
		CatalogRepo: catalogRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Labels:      labels,
		Validator:   services.NewDraftValidator(),
		Clock:       clk,
	}
}

// Execute submits the draft. The session lock is only held to flip the
// submitting flag and to settle the outcome; validation and the commit run
// without it, and the flag rejects concurrent submits and edits meanwhile.
func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Claim the draft
	var snap domain.Snapshot
	err := it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		if s.IsSubmitting() {
			return domain.ErrSubmissionInProgress
		}
		s.SetSubmitting(true)
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	product := snap.Product
	if req.Publish {
		product.Status = domain.ProductStatusPublished
	}

	// 2. Validate
	errs, err := validate_draft.Check(ctx, it.Validator, it.ReadModel, it.Labels, snap)
	if err != nil {
		return nil, it.release(req.DraftID, nil, err)
	}
	if len(errs) > 0 {
		return &Response{Errors: errs}, it.release(req.DraftID, errs, domain.ErrDraftInvalid)
	}

	// 3. Build commit plan
	now := it.Clock.Now()
	productID := uuid.New().String()
	plan := commitplan.NewPlan()
	plan.Add(it.CatalogRepo.PublishMuts(productID, product, now)...)

	ev := &domain.ProductSubmittedEvent{
		ProductID:    productID,
		DraftID:      req.DraftID,
		SKU:          product.SKU,
		Status:       product.Status,
		VariantCount: len(product.Variations),
		SubmittedAt:  now,
	}
	payload, err := shared.MarshalDomainEventPayload(ev)
	if err != nil {
		return nil, it.release(req.DraftID, nil, err)
	}
	plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
		EventID:       uuid.New().String(),
		EventType:     ev.EventType(),
		AggregateType: "product",
		AggregateID:   ev.AggregateID(),
		PayloadJSON:   payload,
		CreatedAtUTC:  now,
	}))

	// 4. Apply plan
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, it.release(req.DraftID, nil, fmt.Errorf("submit draft %s: %w", req.DraftID, err))
	}

	// 5. Settle
	err = it.Sessions.With(context.WithoutCancel(ctx), req.DraftID, func(s *store.Store) error {
		s.ResetDraft()
		shared.LogEvents(s.DrainEvents())
		return nil
	})
	if err != nil {
		log.Printf("draft %s submitted as product %s but could not be reset: %v", req.DraftID, productID, err)
	}
	log.Printf("draft %s submitted as product %s (%d mutations)", req.DraftID, productID, plan.Len())

	return &Response{ProductID: productID, Errors: map[string]string{}}, nil
}

// release clears the submitting flag after a failed attempt, stores errs
// when given, and returns cause.
func (it *Interactor) release(draftID string, errs map[string]string, cause error) error {
	err := it.Sessions.With(context.Background(), draftID, func(s *store.Store) error {
		if errs != nil {
			s.SetErrors(errs)
		}
		s.SetSubmitting(false)
		return nil
	})
	if err != nil {
		log.Printf("draft %s: release after failed submit: %v", draftID, err)
	}
	return cause
}
