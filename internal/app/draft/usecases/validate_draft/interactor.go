package validate_draft

import (
	"context"
	"strconv"
	"strings"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
)

// Request for validating a draft
type Request struct {
	DraftID string
}

type Interactor struct {
	Sessions  contracts.SessionRepo
	Validator *services.DraftValidator
	ReadModel contracts.CatalogReadModel
	Labels    contracts.Labels
}

func NewInteractor(sessions contracts.SessionRepo, readModel contracts.CatalogReadModel, labels contracts.Labels) *Interactor {
	return &Interactor{
		Sessions:  sessions,
		Validator: services.NewDraftValidator(),
		ReadModel: readModel,
		Labels:    labels,
	}
}

// Execute validates the draft, stores the localized error mapping on it and
// returns that mapping. An empty mapping means the draft can be submitted.
func (it *Interactor) Execute(ctx context.Context, req Request) (map[string]string, error) {
	var snap domain.Snapshot
	err := it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	errs, err := Check(ctx, it.Validator, it.ReadModel, it.Labels, snap)
	if err != nil {
		return nil, err
	}

	err = it.Sessions.With(ctx, req.DraftID, func(s *store.Store) error {
		s.SetErrors(errs)
		return nil
	})
	return errs, err
}

// Check runs the draft rules and the catalog SKU lookup against snap and
// returns the violations as field path to message, in the snapshot's
// active language. The catalog lookup is skipped when readModel is nil.
func Check(ctx context.Context, validator *services.DraftValidator, readModel contracts.CatalogReadModel, labels contracts.Labels, snap domain.Snapshot) (map[string]string, error) {
	violations := validator.Validate(snap.Product)

	if readModel != nil {
		skus, fields := collectSKUs(snap.Product)
		if len(skus) > 0 {
			taken, err := readModel.TakenSKUs(ctx, skus)
			if err != nil {
				return nil, err
			}
			for i, sku := range skus {
				if taken[sku] {
					violations = append(violations, services.Violation{Field: fields[i], Key: services.MsgSKUTaken})
				}
			}
		}
	}

	lang := snap.Session.ActiveLanguage.Code
	out := make(map[string]string, len(violations))
	for _, v := range violations {
		if _, ok := out[v.Field]; ok {
			continue
		}
		if labels == nil {
			out[v.Field] = v.Key
			continue
		}
		out[v.Field] = labels.Lookup(lang, v.Key)
	}
	return out, nil
}

// collectSKUs returns the distinct non-empty SKUs of p with the field path
// of their first use.
func collectSKUs(p domain.Product) (skus []string, fields []string) {
	seen := map[string]bool{}
	add := func(sku, field string) {
		sku = strings.TrimSpace(sku)
		if sku == "" || seen[sku] {
			return
		}
		seen[sku] = true
		skus = append(skus, sku)
		fields = append(fields, field)
	}

	add(p.SKU, "sku")
	for i, v := range p.Variations {
		add(v.SKU, "variations."+strconv.Itoa(i)+".sku")
	}
	return skus, fields
}
