package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/flight-refund-status/internal/aws"
	"github.com/imrishuroy/flight-refund-status/internal/config"
	"github.com/imrishuroy/flight-refund-status/internal/flightaware"
	"github.com/imrishuroy/flight-refund-status/internal/handlers"
	"github.com/imrishuroy/flight-refund-status/internal/metrics"
	"github.com/imrishuroy/flight-refund-status/internal/middleware"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterFlightStatusRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.New()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	middleware.ConfigureLogging(cfg.APP.LogLevel)

	hostLocation, err := cfg.APP.HostLocation()
	if err != nil {
		logrus.Fatalf("failed to resolve host timezone: %v", err)
	}
	_, offset := time.Now().In(hostLocation).Zone()
	hostOffset := time.Duration(offset) * time.Second

	handlerCfg := handlers.HandlerConfig{
		FlightData:    flightaware.NewClient(cfg.FlightAware.BaseURL, cfg.FlightAware.Username, cfg.FlightAware.Password, cfg.FlightAware.Timeout),
		Metrics:       metrics.New(prometheus.DefaultRegisterer),
		HostLocation:  hostLocation,
		HostOffset:    hostOffset,
		UTCCorrection: cfg.FlightAware.UTCCorrection(),
	}

	if cfg.Events.QueueURL != "" {
		clients, err := aws.NewAWSClients(context.Background())
		if err != nil {
			logrus.Fatalf("failed to init aws clients: %v", err)
		}
		handlerCfg.Publisher = aws.NewPublisher(clients.SQS, cfg.Events.QueueURL)
	}

	logrus.WithFields(logrus.Fields{
		"host_timezone":  hostLocation.String(),
		"host_offset":    hostOffset.String(),
		"utc_correction": handlerCfg.UTCCorrection.String(),
		"events_enabled": handlerCfg.Publisher != nil,
	}).Info("flight status function configured")

	r := setupRouter(handlerCfg)

	// RUN_LOCAL=true serves HTTP directly for development.
	if cfg.APP.RunLocal {
		addr := ":" + cfg.APP.PORT
		logrus.Infof("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			logrus.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
