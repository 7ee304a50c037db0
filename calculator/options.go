package calculator

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNilID is returned when WithID is given the zero UUID.
var ErrNilID = errors.New("calculator id must not be the zero uuid")

// Option defines a functional option for configuring a Calculator.
type Option func(*Calculator) error

// WithID sets the instance identity instead of generating a random one.
// Useful for deterministic observability labels in tests.
func WithID(id uuid.UUID) Option {
	return func(c *Calculator) error {
		if id == uuid.Nil {
			return ErrNilID
		}

		c.id = id

		return nil
	}
}

// WithLogger sets the logger for the Calculator.
// The logger receives debug-level messages for applied and rejected
// operations; without it the calculator logs nothing.
func WithLogger(logger Logger) Option {
	return func(c *Calculator) error {
		c.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Calculator.
// When both loggers are configured the contextual one wins, enabling
// automatic trace correlation when tracing is also enabled.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(c *Calculator) error {
		c.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Calculator.
// The collector receives operation durations, error counters labeled by
// error kind, and the current value after each successful mutation.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *Calculator) error {
		c.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Calculator.
// The collector receives one span per mutating call, named after the
// operation and labeled with the calculator's ID.
func WithTracing(collector TracingCollector) Option {
	return func(c *Calculator) error {
		c.tracingCollector = collector
		return nil
	}
}
