package config

import (
	"fmt"
	"os"
	"strings"

	"fittracker/internal/observability"

	"go.uber.org/zap/zapcore"
)

// ErrorPolicy decides what the driver does after a package fails.
type ErrorPolicy string

const (
	// PolicyAbort stops the run at the first failing package.
	PolicyAbort ErrorPolicy = "abort"
	// PolicySkip logs the failure and moves on to the next package.
	PolicySkip ErrorPolicy = "skip"
)

type Config struct {
	LogLevel        string
	OnError         ErrorPolicy
	MetricsTextfile string
	Telemetry       TelemetryConfig
}

type TelemetryConfig struct {
	ServiceName  string
	OTLPEndpoint string
}

// Enabled reports whether OTLP exporters should be created at all.
func (t TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// Load reads the configuration from the environment, applies defaults and validates it:
//
//	FITTRACKER_LOG_LEVEL, FITTRACKER_ON_ERROR, FITTRACKER_METRICS_TEXTFILE,
//	OTEL_SERVICE_NAME, OTEL_EXPORTER_OTLP_ENDPOINT
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
		OnError:  PolicyAbort,
		Telemetry: TelemetryConfig{
			ServiceName: observability.DefaultServiceName,
		},
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("FITTRACKER_ON_ERROR"); v != "" {
		cfg.OnError = ErrorPolicy(strings.ToLower(v))
	}
	if v := os.Getenv("FITTRACKER_METRICS_TEXTFILE"); v != "" {
		cfg.MetricsTextfile = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("FITTRACKER_LOG_LEVEL: %w", err)
	}
	switch c.OnError {
	case PolicyAbort, PolicySkip:
	default:
		return fmt.Errorf("FITTRACKER_ON_ERROR must be %q or %q, got %q", PolicyAbort, PolicySkip, c.OnError)
	}
	return nil
}
