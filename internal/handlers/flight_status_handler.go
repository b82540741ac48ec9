package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/flight-refund-status/internal/flightaware"
	"github.com/imrishuroy/flight-refund-status/internal/metrics"
	"github.com/imrishuroy/flight-refund-status/internal/middleware"
	"github.com/imrishuroy/flight-refund-status/internal/refund"
	"github.com/imrishuroy/flight-refund-status/internal/validation"
)

// FlightInfoFetcher returns the raw FlightInfoEx body for a provider ident.
type FlightInfoFetcher interface {
	FlightInfoEx(ctx context.Context, ident string) (string, error)
}

// EventPublisher queues a JSON message with string attributes.
type EventPublisher interface {
	Send(ctx context.Context, messageBody string, attributes map[string]string) error
}

// HandlerConfig groups dependencies for the flight status handler.
type HandlerConfig struct {
	FlightData FlightInfoFetcher
	Publisher  EventPublisher   // nil disables decision events
	Metrics    *metrics.Metrics // nil registers collectors on a private registry
	// HostLocation is the host zone whose rules turn departure wall-clock times into epochs.
	// nil falls back to a fixed zone at HostOffset.
	HostLocation *time.Location
	// HostOffset is the host's UTC offset at startup, used for display and the UTC check.
	HostOffset time.Duration
	// UTCCorrection is subtracted from derived epochs when HostOffset is zero.
	UTCCorrection time.Duration
}

// RegisterFlightStatusRoutes registers the flight status route.
func RegisterFlightStatusRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New(prometheus.NewRegistry())
	}

	r.GET("/api/GetFlightStatus", func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logrus.WithField("request_id", middleware.RequestID(c))

		var q validation.FlightStatusQuery
		if err := validation.BindFlightStatusQuery(c, &q, v); err != nil {
			// BindFlightStatusQuery already wrote a 400
			cfg.Metrics.Outcome(metrics.OutcomeInvalidRequest)
			return
		}

		flightID, err := flightaware.FlightID(q.FlightNumber, q.DepartureTime, cfg.HostLocation, cfg.HostOffset, cfg.UTCCorrection)
		if err != nil {
			cfg.Metrics.Outcome(metrics.OutcomeInvalidRequest)
			c.String(http.StatusBadRequest, validation.InvalidDepartureTimeFormat, q.DepartureTime)
			return
		}
		log = log.WithField("flight_id", flightID)
		log.Debug("requesting flight info")

		body, err := cfg.FlightData.FlightInfoEx(ctx, flightID)
		if err != nil {
			log.WithError(err).Error("flight data provider request failed")
			cfg.Metrics.Outcome(metrics.OutcomeUpstreamFailure)
			c.String(http.StatusBadGateway, "Flight data provider request failed for '%s'", flightID)
			return
		}

		if flightaware.IsNotFound(body) {
			cfg.Metrics.Outcome(metrics.OutcomeNotFound)
			c.String(http.StatusNotFound, "Flight '%s' Not Found", flightID)
			return
		}

		flights, err := flightaware.ParseFlights(body)
		if err != nil {
			log.WithError(err).Error("flight data provider returned unreadable body")
			cfg.Metrics.Outcome(metrics.OutcomeUnreadable)
			c.String(http.StatusBadGateway, "Flight data provider returned an unreadable response for '%s'", flightID)
			return
		}
		if len(flights) != 1 {
			log.WithField("flights", len(flights)).Warn("unexpected flight count")
			cfg.Metrics.Outcome(metrics.OutcomeCardinality)
			c.String(http.StatusBadRequest, "Bad Request. Flight Id '%s' did not return 1 flight.", flightID)
			return
		}

		decision := refund.Evaluate(flights[0].FlightInfo(), cfg.HostOffset)
		cfg.Metrics.Decision(decision.FlightStatus, decision.Refund)
		log.WithFields(logrus.Fields{
			"flight_status": decision.FlightStatus,
			"refund":        decision.Refund,
		}).Info("refund decision evaluated")

		if cfg.Publisher != nil {
			publishDecision(ctx, cfg, decision, middleware.RequestID(c), log)
		}

		c.JSON(http.StatusOK, decision)
	})
}

// publishDecision queues the decision for the metrics worker. Failures never change the response.
func publishDecision(ctx context.Context, cfg HandlerConfig, d refund.Decision, correlationID string, log *logrus.Entry) {
	event := refund.NewDecisionEvent(d, correlationID, time.Now())
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("marshal decision event")
		cfg.Metrics.PublishErrors.Inc()
		return
	}

	attrs := map[string]string{
		"event_id":       event.EventID,
		"flight_status":  d.FlightStatus,
		"correlation_id": correlationID,
	}
	if err := cfg.Publisher.Send(ctx, string(payload), attrs); err != nil {
		log.WithError(err).Warn("queue decision event")
		cfg.Metrics.PublishErrors.Inc()
	}
}
