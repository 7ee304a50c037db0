package calculator

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"
)

// finishFunc completes the instrumentation started for one mutating call.
type finishFunc func(ctx context.Context, span SpanContext, err error)

// startInstrumentation opens a span for the named operation (when a tracing
// collector is configured) and returns a finish function that records logs,
// metrics, and span status once the call's outcome is known.
//
// With no collectors configured everything here is a no-op: the calculator
// stays silent and errors only propagate to the caller.
func (c *Calculator) startInstrumentation(operation string) (context.Context, SpanContext, finishFunc) {
	ctx := context.Background()

	var span SpanContext
	if c.tracingCollector != nil {
		ctx, span = c.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
			labelOperation:    operation,
			labelCalculatorID: c.id.String(),
		})
	}

	start := time.Now()

	finish := func(ctx context.Context, span SpanContext, err error) {
		duration := time.Since(start)

		if err != nil {
			c.logOperationError(ctx, operation, err)
			c.recordErrorMetrics(ctx, operation, err)
			c.recordDurationMetrics(ctx, operation, duration, statusError)
			c.finishSpan(span, statusError)
			return
		}

		c.logOperationApplied(ctx, operation, duration)
		c.recordDurationMetrics(ctx, operation, duration, statusSuccess)
		c.recordValueMetrics(ctx, operation)
		c.finishSpan(span, statusSuccess)
	}

	return ctx, span, finish
}

func (c *Calculator) logOperationApplied(ctx context.Context, operation string, duration time.Duration) {
	if c.contextualLogger != nil {
		c.contextualLogger.DebugContext(ctx, "operation applied",
			labelOperation, operation, "value", c.value, "duration_ms", toMilliseconds(duration))
		return
	}

	if c.logger != nil {
		c.logger.Debug("operation applied",
			labelOperation, operation, "value", c.value, "duration_ms", toMilliseconds(duration))
	}
}

func (c *Calculator) logOperationError(ctx context.Context, operation string, err error) {
	if c.contextualLogger != nil {
		c.contextualLogger.DebugContext(ctx, "operation rejected",
			labelOperation, operation, "error", err.Error())
		return
	}

	if c.logger != nil {
		c.logger.Debug("operation rejected", labelOperation, operation, "error", err.Error())
	}
}

func (c *Calculator) recordDurationMetrics(ctx context.Context, operation string, duration time.Duration, status string) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    status,
	}

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
	} else {
		c.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	}
}

func (c *Calculator) recordErrorMetrics(ctx context.Context, operation string, err error) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    statusError,
		labelErrorKind: errorKind(err),
	}

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricOperationErrors, labels)
	} else {
		c.metricsCollector.IncrementCounter(metricOperationErrors, labels)
	}
}

func (c *Calculator) recordValueMetrics(ctx context.Context, operation string) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation:    operation,
		labelCalculatorID: c.id.String(),
	}

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricCurrentValue, c.value, labels)
	} else {
		c.metricsCollector.RecordValue(metricCurrentValue, c.value, labels)
	}
}

func (c *Calculator) finishSpan(span SpanContext, status string) {
	if c.tracingCollector == nil || span == nil {
		return
	}

	c.tracingCollector.FinishSpan(span, status, map[string]string{
		"value": formatFloat(c.value),
	})
}

// errorKind maps taxonomy errors to stable label values.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrNothingToUndo):
		return "nothing_to_undo"
	default:
		return "unknown"
	}
}

// toMilliseconds converts a duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
