// Package telemetry wires OpenTelemetry tracing and metrics for the kanban
// service. Exporters are "stdout" for local runs and "otlp" (OTLP/HTTP) for
// deployed profiles.
//
//	tp, err := telemetry.InitTracer(ctx, "kanban-service", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "kanban-service", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "kanban-service")
//	metrics.BoardsFinalized.Add(ctx, 1)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrRule        = attribute.Key("kanban.rule")
	AttrSink        = attribute.Key("kanban.sink")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	TaskRuleRejections metric.Int64Counter
	BoardsFinalized    metric.Int64Counter
	Notifications      metric.Int64Counter
	// OverdueBoards is set by each overdue sweep.
	OverdueBoards metric.Int64Gauge
}

// InitTracer installs a global TracerProvider and the W3C trace context and
// baggage propagators. The caller shuts the provider down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var spanExporter sdktrace.SpanExporter
	if exporter == ExporterOTLP {
		host, insecure := otlpTarget(endpoint)
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spanExporter, err = otlptracehttp.New(ctx, opts...)
	} else {
		spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader. The
// caller shuts the provider down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var metricExporter sdkmetric.Exporter
	if exporter == ExporterOTLP {
		host, insecure := otlpTarget(endpoint)
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metricExporter, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		metricExporter, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := builder{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Outgoing HTTP requests", "{request}"),
		TaskRuleRejections:    b.counter("kanban.task.rule_rejections", "Task writes rejected by workflow rules", "{rejection}"),
		BoardsFinalized:       b.counter("kanban.board.finalized", "Boards moved to COMPLETED", "{board}"),
		Notifications:         b.counter("kanban.notifications", "Assignment notification deliveries by sink and result", "{notification}"),
		OverdueBoards:         b.gauge("kanban.board.overdue", "Boards holding at least one overdue task at the last sweep", "{board}"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// builder collects instrument creation errors so NewMetrics can report them
// together.
type builder struct {
	meter metric.Meter
	errs  []error
}

func (b *builder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.check(name, err)
	return c
}

func (b *builder) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.check(name, err)
	return h
}

func (b *builder) gauge(name, desc, unit string) metric.Int64Gauge {
	g, err := b.meter.Int64Gauge(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.check(name, err)
	return g
}

func (b *builder) check(name string, err error) {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
}

func setup(serviceName, exporter, endpoint string) (*resource.Resource, error) {
	switch exporter {
	case ExporterStdout:
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(buildVersion()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// buildVersion reports the main module version stamped by the Go toolchain.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// otlpTarget turns "http://otel-collector:4318" into the host:port the OTLP
// exporters expect, and reports whether TLS must be disabled.
func otlpTarget(endpoint string) (host string, insecure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true
	}
	return u.Host, u.Scheme != "https"
}
