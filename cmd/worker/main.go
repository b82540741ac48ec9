package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/flight-refund-status/internal/aws"
	"github.com/imrishuroy/flight-refund-status/internal/config"
	"github.com/imrishuroy/flight-refund-status/internal/middleware"
)

func main() {
	// the worker never calls the provider, so only the APP and Events sections are parsed
	var cfg struct {
		config.APP
		config.Events
	}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	middleware.ConfigureLogging(cfg.APP.LogLevel)

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logrus.Fatalf("failed to init aws clients: %v", err)
	}
	p := NewProcessor(aws.NewMetricsWriter(clients.CloudWatch, cfg.Events.MetricsNamespace))

	// RUN_LOCAL=true processes a single simulated SQS message.
	if cfg.APP.RunLocal {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"event_id":"local-1","decision":{"id":"UAL123@1579084200","flightStatus":"delayed","refund":200}}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{MessageId: "local", Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			logrus.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(p.Handle)
}
