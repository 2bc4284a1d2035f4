package store

import (
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
)

// Listener receives the new snapshot after every effective mutation. The
// snapshot is the listener's own copy.
type Listener func(domain.Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store holds the draft of one authoring session and republishes it to
// subscribers after each mutation. A Store is confined to one goroutine at
// a time; callers sharing it across goroutines serialize access themselves.
type Store struct {
	draft  *domain.Draft
	clock  clock.Clock
	subs   []subscription
	nextID int
}

// New wraps draft in a store stamping changes with clk.
func New(draft *domain.Draft, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Store{draft: draft, clock: clk}
}

func (s *Store) ID() string {
	return s.draft.ID()
}

// Snapshot returns the current read-only view of the draft.
func (s *Store) Snapshot() domain.Snapshot {
	return s.draft.Snapshot()
}

// VariantTemplate returns the base values for variant generation.
func (s *Store) VariantTemplate() domain.VariantTemplate {
	return s.draft.VariantTemplate()
}

// IsSubmitting reports whether a submission is in flight.
func (s *Store) IsSubmitting() bool {
	return s.draft.IsSubmitting()
}

// DrainEvents returns and clears the domain events recorded so far.
func (s *Store) DrainEvents() []domain.DomainEvent {
	events := s.draft.DomainEvents()
	s.draft.ClearEvents()
	return events
}

// Subscribe registers l and returns a function that removes it again.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: l})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) SetBasicInfo(info domain.BasicInfo) {
	s.draft.SetBasicInfo(info, s.clock.Now())
	s.publish()
}

func (s *Store) UpsertTranslation(languageID string, fields domain.TranslationFields) {
	s.draft.UpsertTranslation(languageID, fields, s.clock.Now())
	s.publish()
}

func (s *Store) UpsertPrice(currencyID string, fields domain.PriceFields) {
	s.draft.UpsertPrice(currencyID, fields, s.clock.Now())
	s.publish()
}

func (s *Store) SetMainImage(media domain.Media) {
	s.draft.SetMainImage(media, s.clock.Now())
	s.publish()
}

func (s *Store) ClearMainImage() bool {
	return s.publishIf(s.draft.ClearMainImage(s.clock.Now()))
}

func (s *Store) AppendGalleryImage(media domain.Media) {
	s.draft.AppendGalleryImage(media, s.clock.Now())
	s.publish()
}

// RemoveGalleryImageAt reports whether an image was removed.
func (s *Store) RemoveGalleryImageAt(index int) bool {
	return s.publishIf(s.draft.RemoveGalleryImageAt(index, s.clock.Now()))
}

func (s *Store) SetInventory(fields domain.InventoryFields) {
	s.draft.SetInventory(fields, s.clock.Now())
	s.publish()
}

func (s *Store) SetAttributes(attrs []domain.Attribute) {
	s.draft.SetAttributes(attrs, s.clock.Now())
	s.publish()
}

func (s *Store) SetVariations(variants []domain.Variant) {
	s.draft.SetVariations(variants, s.clock.Now())
	s.publish()
}

// ApplyGeneratedVariants replaces the variations unless variants is empty.
func (s *Store) ApplyGeneratedVariants(variants []domain.Variant) bool {
	return s.publishIf(s.draft.ApplyGeneratedVariants(variants, s.clock.Now()))
}

func (s *Store) UpdateVariant(id string, fields domain.VariantFields) bool {
	return s.publishIf(s.draft.UpdateVariant(id, fields, s.clock.Now()))
}

func (s *Store) SetOrganization(fields domain.OrganizationFields) {
	s.draft.SetOrganization(fields, s.clock.Now())
	s.publish()
}

func (s *Store) AddTag(tag string) bool {
	return s.publishIf(s.draft.AddTag(tag, s.clock.Now()))
}

func (s *Store) RemoveTag(tag string) bool {
	return s.publishIf(s.draft.RemoveTag(tag, s.clock.Now()))
}

func (s *Store) SetSubmitting(submitting bool) {
	s.draft.SetSubmitting(submitting)
	s.publish()
}

func (s *Store) SetErrors(errs map[string]string) {
	s.draft.SetErrors(errs)
	s.publish()
}

func (s *Store) SetActiveLanguage(lang domain.Language) {
	s.draft.SetActiveLanguage(lang, s.clock.Now())
	s.publish()
}

func (s *Store) SetActiveCurrency(cur domain.Currency) {
	s.draft.SetActiveCurrency(cur, s.clock.Now())
	s.publish()
}

// ResetDraft discards every edit.
func (s *Store) ResetDraft() {
	s.draft.Reset(s.clock.Now())
	s.publish()
}

func (s *Store) publishIf(changed bool) bool {
	if changed {
		s.publish()
	}
	return changed
}

func (s *Store) publish() {
	if len(s.subs) == 0 {
		return
	}
	for _, sub := range append([]subscription{}, s.subs...) {
		sub.fn(s.draft.Snapshot())
	}
}
