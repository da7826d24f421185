package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ServiceName    = "app-painel-insights"
	ServiceVersion = "v1.0.0"
)

var tracerProvider *sdktrace.TracerProvider

// NewTracerProvider builds the OTLP gRPC provider for the service spans: the HTTP
// server span, dashboard.load, dashboard.view and the datasource.* fetch spans.
// The resource carries the configured data source so traces of different
// deployments can be told apart.
func NewTracerProvider(ctx context.Context, cfg *config.Config) (*sdktrace.TracerProvider, error) {
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
			attribute.String("painel.data_source", cfg.DataSource),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	), nil
}

// InitTracer installs the W3C propagator and, when TRACING_ENABLED is set, the
// global tracer provider. The propagator is installed even with tracing off, so an
// incoming traceparent is still extracted per request and forwarded by HTTPSource.
func InitTracer(cfg *config.Config, logger *zap.Logger) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.TracingEnabled {
		logger.Info("tracing is disabled")
		return
	}

	tp, err := NewTracerProvider(context.Background(), cfg)
	if err != nil {
		logger.Error("tracing not started", zap.Error(err))
		return
	}

	tracerProvider = tp
	otel.SetTracerProvider(tp)
	logger.Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.String("data_source", cfg.DataSource),
	)
}

// ShutdownTracer flushes pending spans; a no-op when tracing was not started
func ShutdownTracer(logger *zap.Logger) {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown tracer provider", zap.Error(err))
	}
	tracerProvider = nil
}
