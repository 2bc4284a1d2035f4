package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map of a new, unprocessed outbox row.
func BuildInsertMap(eventID, eventType, aggregateType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:       eventID,
		ColEventType:     eventType,
		ColAggregateType: aggregateType,
		ColAggregateID:   aggregateID,
		ColPayload:       payload,
		ColStatus:        status,
		ColCreatedAt:     createdAt,
		ColProcessedAt:   nil,
	}
}

// InsertMutation constructs a mutation for the outbox table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
