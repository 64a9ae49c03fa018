// Copyright (c) Microsoft. All rights reserved.

// Package telemetry wires structured logging and opt-in OpenTelemetry
// tracing and metrics for the chat client. Traces and metrics are
// exported to rotating files under ./logs so an OTEL collector (or a
// human) can pick them up without touching the interactive terminal.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/jochenvw/azchat/chat"
)

// NewLogger builds the process logger. With logFile set, records go to
// a rotating JSON file; otherwise they go to stderr as text. The debug
// flag lowers the level to Debug.
func NewLogger(logFile string, debug bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if logFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})), nil
	}

	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	return slog.New(slog.NewJSONHandler(rotating, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// Telemetry records spans and counters for chat turns. A nil *Telemetry
// is valid and records nothing.
type Telemetry struct {
	tracer           trace.Tracer
	requests         metric.Int64Counter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
}

// Init sets up OpenTelemetry tracing and metrics with rotating-file
// stdout exporters. When enabled is false it returns a nil Telemetry
// and a no-op cleanup.
func Init(ctx context.Context, enabled bool) (*Telemetry, func(), error) {
	if !enabled {
		return nil, func() {}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("azchat"),
			semconv.ServiceVersion("0.1.0"),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create resource: %w", err)
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create logs directory: %w", err)
	}

	traceFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "azchat_traces.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	traceExporter, err := stdouttrace.New(
		stdouttrace.WithWriter(traceFile),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricsFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "azchat_metrics.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	metricExporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(metricsFile),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				metricExporter,
				sdkmetric.WithInterval(10*time.Second),
			),
		),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter("azchat")
	t := &Telemetry{tracer: tp.Tracer("azchat")}

	if t.requests, err = meter.Int64Counter("chat.requests"); err != nil {
		return nil, nil, fmt.Errorf("create counter: %w", err)
	}
	if t.promptTokens, err = meter.Int64Counter("chat.prompt_tokens"); err != nil {
		return nil, nil, fmt.Errorf("create counter: %w", err)
	}
	if t.completionTokens, err = meter.Int64Counter("chat.completion_tokens"); err != nil {
		return nil, nil, fmt.Errorf("create counter: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown tracer provider", "error", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown meter provider", "error", err)
		}
		if err := traceFile.Close(); err != nil {
			slog.Error("failed to close trace file", "error", err)
		}
		if err := metricsFile.Close(); err != nil {
			slog.Error("failed to close metrics file", "error", err)
		}
	}

	return t, cleanup, nil
}

// StartTurn opens a span for one chat turn and returns the span context
// plus a completion callback that records usage counters and the
// outcome. Safe to call on a nil receiver.
func (t *Telemetry) StartTurn(ctx context.Context, streaming bool) (context.Context, func(u chat.Usage, err error)) {
	if t == nil {
		return ctx, func(chat.Usage, error) {}
	}

	attrs := metric.WithAttributes(attribute.Bool("chat.streaming", streaming))
	ctx, span := t.tracer.Start(ctx, "chat.turn",
		trace.WithAttributes(attribute.Bool("chat.streaming", streaming)),
	)

	return ctx, func(u chat.Usage, err error) {
		t.requests.Add(ctx, 1, attrs)
		if u.InputTokens > 0 {
			t.promptTokens.Add(ctx, int64(u.InputTokens), attrs)
		}
		if u.OutputTokens > 0 {
			t.completionTokens.Add(ctx, int64(u.OutputTokens), attrs)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, chat.Category(err))
		} else {
			span.SetAttributes(attribute.Int("chat.total_tokens", u.TotalTokens))
		}
		span.End()
	}
}
