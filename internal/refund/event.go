package refund

import (
	"time"

	"github.com/google/uuid"
)

// DecisionEvent is the payload sent from the API -> SQS -> metrics worker.
type DecisionEvent struct {
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Decision      Decision  `json:"decision"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}

func NewDecisionEvent(d Decision, correlationID string, evaluatedAt time.Time) DecisionEvent {
	return DecisionEvent{
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Decision:      d,
		EvaluatedAt:   evaluatedAt.UTC(),
	}
}
