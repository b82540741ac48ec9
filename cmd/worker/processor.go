package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/flight-refund-status/internal/refund"
)

// DecisionMetrics accepts per-batch decision aggregates.
type DecisionMetrics interface {
	PutDecisionCounts(ctx context.Context, counts map[string]int, refundTotal int) error
}

// Processor folds a batch of decision events into CloudWatch metrics.
type Processor struct {
	metrics DecisionMetrics
}

func NewProcessor(m DecisionMetrics) *Processor {
	return &Processor{metrics: m}
}

// Handle receives an SQS batch event and writes one set of metrics for it.
// Any malformed message fails the whole batch so SQS redelivers it (DLQ after max receives).
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	counts := map[string]int{}
	refundTotal := 0

	for _, rec := range ev.Records {
		var msg refund.DecisionEvent
		if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
			logrus.WithField("message_id", rec.MessageId).WithError(err).Error("invalid decision event")
			return fmt.Errorf("invalid message body %s: %w", rec.MessageId, err)
		}

		logrus.WithFields(logrus.Fields{
			"event_id":       msg.EventID,
			"correlation_id": msg.CorrelationID,
			"flight":         msg.Decision.ID,
			"flight_status":  msg.Decision.FlightStatus,
		}).Debug("decision event received")

		counts[msg.Decision.FlightStatus]++
		refundTotal += msg.Decision.Refund
	}

	if err := p.metrics.PutDecisionCounts(ctx, counts, refundTotal); err != nil {
		return fmt.Errorf("write decision metrics: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"records":      len(ev.Records),
		"refund_total": refundTotal,
	}).Info("decision batch processed")
	return nil
}
