package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
// It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}

	status := e.Status
	if status == "" {
		status = m_outbox.StatusPending
	}
	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateType,
		e.AggregateID,
		e.PayloadJSON,
		status,
		e.CreatedAtUTC.UTC(),
	)
	return m_outbox.InsertMutation(values)
}
