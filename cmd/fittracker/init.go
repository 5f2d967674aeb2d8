package main

import (
	"context"
	"errors"

	"fittracker/internal/calculator"
	"fittracker/internal/config"
	"fittracker/internal/observability"
)

// shutdownStack runs provider shutdowns in reverse registration order.
type shutdownStack []func(context.Context) error

func (s shutdownStack) shutdown(ctx context.Context) error {
	var errs []error
	for i := len(s) - 1; i >= 0; i-- {
		errs = append(errs, s[i](ctx))
	}
	return errors.Join(errs...)
}

type providerInit func(context.Context, string) (func(context.Context) error, error)

// otlpProviders are set up in order when an OTLP endpoint is configured.
var otlpProviders = []providerInit{
	observability.InitTracing,
	observability.InitMetrics,
	observability.InitLogging,
}

// initTelemetry sets up the OTLP providers when an endpoint is configured and
// always registers the calculator instruments. The returned function shuts
// the providers down in reverse order. If a provider fails, the ones already
// started are shut down before the error is returned.
func initTelemetry(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	var stack shutdownStack

	if cfg.Telemetry.Enabled() {
		for _, setup := range otlpProviders {
			fn, err := setup(ctx, cfg.Telemetry.ServiceName)
			if err != nil {
				return nil, errors.Join(err, stack.shutdown(ctx))
			}
			stack = append(stack, fn)
		}
	}

	if err := calculator.InitMetrics(observability.Registry); err != nil {
		return nil, errors.Join(err, stack.shutdown(ctx))
	}

	return stack.shutdown, nil
}
