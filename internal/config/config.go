package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // HOST_TIMEZONE must resolve on images without zoneinfo

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// New loads an optional .env file and parses the environment into a Config.
func New() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("no .env file loaded, using process environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

type Config struct {
	APP
	FlightAware
	Events
}

type APP struct {
	PORT         string `env:"APP_PORT" envDefault:"8080"`
	RunLocal     bool   `env:"RUN_LOCAL" envDefault:"false"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	HostTimezone string `env:"HOST_TIMEZONE" envDefault:"Local"`
}

type FlightAware struct {
	BaseURL  string        `env:"FLIGHTAWARE_BASE_URL" envDefault:"https://flightxml.flightaware.com/json/FlightXML2/"`
	Username string        `env:"FLIGHTAWARE_USERNAME,required"`
	Password string        `env:"FLIGHTAWARE_PASSWORD,required"`
	Timeout  time.Duration `env:"FLIGHTAWARE_TIMEOUT" envDefault:"10s"`
	// Applied to derived flight ids only when the host clock is on UTC.
	TimezoneOffsetMinutes int `env:"TIMEZONE_OFFSET_MINUTES" envDefault:"0"`
}

type Events struct {
	QueueURL         string `env:"REFUND_EVENTS_QUEUE_URL"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"FlightRefunds"`
}

// UTCCorrection is the configured timezone offset as a duration.
func (f FlightAware) UTCCorrection() time.Duration {
	return time.Duration(f.TimezoneOffsetMinutes) * time.Minute
}

// HostLocation resolves HostTimezone; "Local" or empty means the process zone.
func (a APP) HostLocation() (*time.Location, error) {
	if a.HostTimezone == "" || a.HostTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.HostTimezone)
	if err != nil {
		return nil, fmt.Errorf("load host timezone %q: %w", a.HostTimezone, err)
	}
	return loc, nil
}

// HostOffset resolves HostTimezone to its UTC offset at the given instant.
func (a APP) HostOffset(now time.Time) (time.Duration, error) {
	loc, err := a.HostLocation()
	if err != nil {
		return 0, err
	}
	_, offset := now.In(loc).Zone()
	return time.Duration(offset) * time.Second, nil
}
