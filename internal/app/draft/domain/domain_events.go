package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// DraftStartedEvent is raised when an authoring session opens a new draft.
type DraftStartedEvent struct {
	DraftID   string
	Language  string
	Currency  string
	StartedAt time.Time
}

func (e *DraftStartedEvent) EventType() string {
	return "draft.started"
}

func (e *DraftStartedEvent) AggregateID() string {
	return e.DraftID
}

func (e *DraftStartedEvent) OccurredAt() time.Time {
	return e.StartedAt
}

// DraftChangedEvent is raised for every effective mutation of a draft section.
type DraftChangedEvent struct {
	DraftID   string
	Section   string
	ChangedAt time.Time
}

func (e *DraftChangedEvent) EventType() string {
	return "draft.changed"
}

func (e *DraftChangedEvent) AggregateID() string {
	return e.DraftID
}

func (e *DraftChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// VariantsGeneratedEvent is raised when generation replaced the variations.
type VariantsGeneratedEvent struct {
	DraftID     string
	Count       int
	GeneratedAt time.Time
}

func (e *VariantsGeneratedEvent) EventType() string {
	return "draft.variants_generated"
}

func (e *VariantsGeneratedEvent) AggregateID() string {
	return e.DraftID
}

func (e *VariantsGeneratedEvent) OccurredAt() time.Time {
	return e.GeneratedAt
}

// DraftResetEvent is raised when a draft is discarded back to its defaults.
type DraftResetEvent struct {
	DraftID string
	ResetAt time.Time
}

func (e *DraftResetEvent) EventType() string {
	return "draft.reset"
}

func (e *DraftResetEvent) AggregateID() string {
	return e.DraftID
}

func (e *DraftResetEvent) OccurredAt() time.Time {
	return e.ResetAt
}

// ProductSubmittedEvent is raised when a draft was handed off to the catalog.
// Its aggregate is the new catalog product, not the draft.
type ProductSubmittedEvent struct {
	ProductID    string
	DraftID      string
	SKU          string
	Status       ProductStatus
	VariantCount int
	SubmittedAt  time.Time
}

func (e *ProductSubmittedEvent) EventType() string {
	return "product.submitted"
}

func (e *ProductSubmittedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductSubmittedEvent) OccurredAt() time.Time {
	return e.SubmittedAt
}
