package calculator

import (
	"context"
	"time"
)

// Logger interface for operational logging of calculator activity.
// All hooks in this file are optional: a Calculator without collectors
// configured stays completely silent, and errors are never logged on the
// caller's behalf beyond what the configured collectors record.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting calculator performance and
// operational metrics (operation counts, durations, failure kinds).
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods
// for trace correlation. This interface is optional - the Calculator uses the
// context-aware methods when available, falling back to the base
// MetricsCollector interface otherwise.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from calculator
// operations. It is dependency-free so users can integrate with any tracing
// backend (OpenTelemetry, Jaeger, Zipkin, etc.) by implementing this interface.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger interface for context-aware logging with automatic trace
// correlation. It follows the same dependency-free pattern as MetricsCollector
// and TracingCollector, allowing integration with any logging backend that
// supports context-based correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Metric and label names emitted through the collectors above.
const (
	metricOperationDuration = "calculator_operation_duration_seconds"
	metricOperationErrors   = "calculator_operation_errors_total"
	metricCurrentValue      = "calculator_current_value"

	labelOperation    = "operation"
	labelStatus       = "status"
	labelErrorKind    = "error_kind"
	labelCalculatorID = "calculator_id"

	statusSuccess = "success"
	statusError   = "error"

	spanNamePrefix = "calculator."
)
