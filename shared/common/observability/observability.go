package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

type shutdown func(ctx context.Context) error

// Options บอกว่าจะส่ง trace/metric ไปที่ไหน และในนามของ service ใด
type Options struct {
	CollectorAddr  string
	ServiceName    string
	ServiceVersion string
}

// NewResource สร้าง resource ที่ระบุชื่อและเวอร์ชันของ service
func NewResource(ctx context.Context, opts Options) (*resource.Resource, error) {
	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(opts.ServiceName)),
	}
	if opts.ServiceVersion != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(opts.ServiceVersion)))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func InitOtlp(ctx context.Context, opts Options) (shutdown, error) {
	// ไม่ระบุ collector ก็ใช้ no-op provider ของ otel ต่อไป
	if opts.CollectorAddr == "" {
		return func(ctx context.Context) error { return nil }, nil
	}

	res, err := NewResource(ctx, opts)
	if err != nil {
		return nil, err
	}

	tp, err := newTracerProvider(ctx, opts.CollectorAddr, res)
	if err != nil {
		return nil, err
	}

	mp, err := newMeterProvider(ctx, opts.CollectorAddr, res)
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	// memory, GC, goroutines
	if err := runtime.Start(
		runtime.WithMeterProvider(mp),
		runtime.WithMinimumReadMemStatsInterval(10*time.Second),
	); err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to start runtime instrumentation: %w", err),
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
		)
	}

	return func(ctx context.Context) error {
		var errTrace, errMetric error
		if err := tp.Shutdown(ctx); err != nil {
			errTrace = fmt.Errorf("failed to shutdown tracer: %w", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			errMetric = fmt.Errorf("failed to shutdown meter: %w", err)
		}
		return errors.Join(errTrace, errMetric)
	}, nil
}

func newTracerProvider(ctx context.Context, collectorAddr string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(collectorAddr),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, collectorAddr string, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(collectorAddr),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	), nil
}
