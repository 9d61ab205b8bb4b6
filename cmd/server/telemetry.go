package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/kanban-service/internal/platform/config"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
)

// otelProviders owns the OpenTelemetry providers started for one run.
// metrics is nil when telemetry is disabled.
type otelProviders struct {
	metrics  *telemetry.Metrics
	shutdown []namedShutdown
}

type namedShutdown struct {
	name string
	fn   func(context.Context) error
}

func (o *otelProviders) onShutdown(name string, fn func(context.Context) error) {
	o.shutdown = append(o.shutdown, namedShutdown{name: name, fn: fn})
}

// Shutdown flushes providers in reverse start order.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(o.shutdown) - 1; i >= 0; i-- {
		s := o.shutdown[i]
		if err := s.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
		}
	}
	o.shutdown = nil
	return errors.Join(errs...)
}

// initTelemetry installs the global tracer and meter providers and builds the
// service instruments. Providers started before a failure are shut down.
func initTelemetry(ctx context.Context, cfg *config.Config) (_ *otelProviders, err error) {
	o := &otelProviders{}
	tc := cfg.Telemetry
	if !tc.Enabled {
		return o, nil
	}
	defer func() {
		if err != nil {
			_ = o.Shutdown(ctx)
		}
	}()

	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.onShutdown("tracer", tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.onShutdown("meter", mp.Shutdown)

	if o.metrics, err = telemetry.NewMetrics(mp, tc.ServiceName); err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
