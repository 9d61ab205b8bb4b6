package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
)

const serviceName = "kanban-service"

func TestInit_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "unknown exporter", exporter: "jaeger", endpoint: ""},
		{name: "empty exporter", exporter: "", endpoint: ""},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, endpoint: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			if _, err := telemetry.InitTracer(ctx, serviceName, tt.exporter, tt.endpoint); err == nil {
				t.Error("InitTracer() error = nil, want error")
			}
			if _, err := telemetry.InitMeter(ctx, serviceName, tt.exporter, tt.endpoint); err == nil {
				t.Error("InitMeter() error = nil, want error")
			}
		})
	}
}

// Init* replace the global providers, so these run serially.
func TestInitTracer(t *testing.T) {
	for _, tt := range []struct{ exporter, endpoint string }{
		{telemetry.ExporterStdout, ""},
		{telemetry.ExporterOTLP, "http://localhost:4318"},
		{telemetry.ExporterOTLP, "localhost:4318"},
	} {
		t.Run(tt.exporter+" "+tt.endpoint, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, serviceName, tt.exporter, tt.endpoint)
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so OTLP flushes may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if otel.GetTracerProvider() != tp {
				t.Error("global TracerProvider was not replaced")
			}
			if len(otel.GetTextMapPropagator().Fields()) < 2 {
				t.Errorf("propagator fields = %v, want trace context and baggage", otel.GetTextMapPropagator().Fields())
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	for _, tt := range []struct{ exporter, endpoint string }{
		{telemetry.ExporterStdout, ""},
		{telemetry.ExporterOTLP, "https://collector.example.com:4318"},
	} {
		t.Run(tt.exporter, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, serviceName, tt.exporter, tt.endpoint)
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })

			if otel.GetMeterProvider() != mp {
				t.Error("global MeterProvider was not replaced")
			}
		})
	}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), serviceName)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	instruments := map[string]any{
		"ServerRequestDuration": m.ServerRequestDuration,
		"ServerRequestTotal":    m.ServerRequestTotal,
		"ClientRequestDuration": m.ClientRequestDuration,
		"ClientRequestTotal":    m.ClientRequestTotal,
		"TaskRuleRejections":    m.TaskRuleRejections,
		"BoardsFinalized":       m.BoardsFinalized,
		"Notifications":         m.Notifications,
		"OverdueBoards":         m.OverdueBoards,
	}
	for name, inst := range instruments {
		if inst == nil {
			t.Errorf("%s is nil", name)
		}
	}

	// Recording on the returned instruments must not panic.
	ctx := context.Background()
	m.BoardsFinalized.Add(ctx, 1)
	m.OverdueBoards.Record(ctx, 3)
}
