package shared

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductSubmittedEvent:
		payload = map[string]interface{}{
			"product_id":    e.ProductID,
			"draft_id":      e.DraftID,
			"sku":           e.SKU,
			"status":        string(e.Status),
			"variant_count": e.VariantCount,
			"submitted_at":  e.SubmittedAt,
		}

	case *domain.DraftStartedEvent:
		payload = map[string]interface{}{
			"draft_id":   e.DraftID,
			"language":   e.Language,
			"currency":   e.Currency,
			"started_at": e.StartedAt,
		}

	case *domain.DraftChangedEvent:
		payload = map[string]interface{}{
			"draft_id":   e.DraftID,
			"section":    e.Section,
			"changed_at": e.ChangedAt,
		}

	case *domain.VariantsGeneratedEvent:
		payload = map[string]interface{}{
			"draft_id":     e.DraftID,
			"count":        e.Count,
			"generated_at": e.GeneratedAt,
		}

	case *domain.DraftResetEvent:
		payload = map[string]interface{}{
			"draft_id": e.DraftID,
			"reset_at": e.ResetAt,
		}
	}

	if payload == nil {
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	payload["event_type"] = ev.EventType()
	b, err := json.Marshal(payload)
	return string(b), err
}

// LogEvents writes session events to the service log. Draft events stay in
// memory with the session; only submissions reach the catalog outbox.
func LogEvents(events []domain.DomainEvent) {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			log.Printf("draft event %s: %v", ev.EventType(), err)
			continue
		}
		log.Printf("draft event %s aggregate=%s payload=%s", ev.EventType(), ev.AggregateID(), payload)
	}
}
