package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded for every flight status request.
const (
	OutcomeDecided         = "decided"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeNotFound        = "not_found"
	OutcomeCardinality     = "cardinality_mismatch"
	OutcomeUpstreamFailure = "upstream_failure"
	OutcomeUnreadable      = "unreadable_response"
)

type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	DecisionsTotal *prometheus.CounterVec
	RefundAmounts  prometheus.Histogram
	PublishErrors  prometheus.Counter
}

// New registers the flight status collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flight_status_requests_total",
				Help: "Flight status requests by outcome",
			},
			[]string{"outcome"},
		),
		DecisionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "refund_decisions_total",
				Help: "Refund decisions by flight status",
			},
			[]string{"status"},
		),
		RefundAmounts: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "refund_amounts",
				Help:    "Distribution of refund amounts",
				Buckets: prometheus.LinearBuckets(0, 100, 4),
			},
		),
		PublishErrors: f.NewCounter(
			prometheus.CounterOpts{
				Name: "refund_event_publish_errors_total",
				Help: "Refund decision events that could not be queued",
			},
		),
	}
}

func (m *Metrics) Outcome(outcome string) {
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Decision(status string, refund int) {
	m.RequestsTotal.WithLabelValues(OutcomeDecided).Inc()
	m.DecisionsTotal.WithLabelValues(status).Inc()
	m.RefundAmounts.Observe(float64(refund))
}
