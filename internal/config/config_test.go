package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("FLIGHTAWARE_USERNAME", "alice")
	t.Setenv("FLIGHTAWARE_PASSWORD", "s3cret")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.Equal(t, "info", cfg.APP.LogLevel)
	assert.Equal(t, "https://flightxml.flightaware.com/json/FlightXML2/", cfg.FlightAware.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.FlightAware.Timeout)
	assert.Equal(t, time.Duration(0), cfg.FlightAware.UTCCorrection())
	assert.Equal(t, "FlightRefunds", cfg.Events.MetricsNamespace)
	assert.Empty(t, cfg.Events.QueueURL)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("FLIGHTAWARE_USERNAME", "alice")
	t.Setenv("FLIGHTAWARE_PASSWORD", "s3cret")
	t.Setenv("TIMEZONE_OFFSET_MINUTES", "-300")
	t.Setenv("FLIGHTAWARE_TIMEOUT", "3s")
	t.Setenv("REFUND_EVENTS_QUEUE_URL", "http://localhost:4566/000000000000/refunds")
	t.Setenv("RUN_LOCAL", "true")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, -5*time.Hour, cfg.FlightAware.UTCCorrection())
	assert.Equal(t, 3*time.Second, cfg.FlightAware.Timeout)
	assert.Equal(t, "http://localhost:4566/000000000000/refunds", cfg.Events.QueueURL)
	assert.True(t, cfg.APP.RunLocal)
}

func TestNew_MissingCredentials(t *testing.T) {
	// t.Setenv restores the original values once the test ends.
	t.Setenv("FLIGHTAWARE_USERNAME", "")
	t.Setenv("FLIGHTAWARE_PASSWORD", "")
	os.Unsetenv("FLIGHTAWARE_USERNAME")
	os.Unsetenv("FLIGHTAWARE_PASSWORD")

	_, err := New()
	assert.Error(t, err)
}

func TestHostOffset(t *testing.T) {
	winter := time.Date(2020, 1, 15, 12, 0, 0, 0, time.UTC)

	off, err := APP{HostTimezone: "UTC"}.HostOffset(winter)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), off)

	off, err = APP{HostTimezone: "America/New_York"}.HostOffset(winter)
	require.NoError(t, err)
	assert.Equal(t, -5*time.Hour, off)

	_, err = APP{HostTimezone: "Nowhere/Invalid"}.HostOffset(winter)
	assert.Error(t, err)
}

func TestHostLocation(t *testing.T) {
	loc, err := APP{HostTimezone: "Local"}.HostLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = APP{HostTimezone: "America/New_York"}.HostLocation()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	_, err = APP{HostTimezone: "Nowhere/Invalid"}.HostLocation()
	assert.Error(t, err)
}
