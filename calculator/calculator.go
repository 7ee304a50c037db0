package calculator

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Operation names as they appear in Calculator history records.
const (
	historyOpInit     = "init"
	historyOpAdd      = "add"
	historyOpSubtract = "subtract"
	historyOpMultiply = "multiply"
	historyOpDivide   = "divide"
	historyOpPower    = "power"
	historyOpSet      = "set"
	historyOpClear    = "clear"
)

// Calculator is a stateful arithmetic engine holding a current value and an
// undoable history of every applied operation.
//
// It is a single-threaded value object: every method either transitions the
// calculator atomically to a new valid state or leaves it exactly as it was
// and returns the failure. The history is never empty, its last record always
// matches the current value, and the current value is always finite.
//
// Construct instances with NewCalculator; the zero value is not usable.
type Calculator struct {
	id      uuid.UUID
	value   float64
	history []HistoryRecord

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewCalculator creates a Calculator with the given initial value, which must
// be a finite number. The history is seeded with a single "init" record.
func NewCalculator(initial float64, opts ...Option) (*Calculator, error) {
	if _, err := ValidateNumber(initial); err != nil {
		return nil, err
	}

	calc := &Calculator{
		id:    uuid.New(),
		value: initial,
	}

	for _, opt := range opts {
		if err := opt(calc); err != nil {
			return nil, err
		}
	}

	calc.history = append(calc.history, buildHistoryRecord(initial, historyOpInit))

	return calc, nil
}

// ID returns the instance identity used in observability labels.
// It plays no part in equality.
func (c *Calculator) ID() uuid.UUID {
	return c.id
}

// Value returns the current value.
func (c *Calculator) Value() float64 {
	return c.value
}

// History returns a snapshot of all recorded states, oldest first.
// The returned slice shares no storage with the calculator.
func (c *Calculator) History() []HistoryRecord {
	snapshot := make([]HistoryRecord, len(c.history))
	for i, record := range c.history {
		snapshot[i] = record.cloned()
	}

	return snapshot
}

// Add adds operand to the current value.
func (c *Calculator) Add(operand float64) error {
	return c.applyOperation(historyOpAdd, Add, operand)
}

// Subtract subtracts operand from the current value.
func (c *Calculator) Subtract(operand float64) error {
	return c.applyOperation(historyOpSubtract, Subtract, operand)
}

// Multiply multiplies the current value by operand.
func (c *Calculator) Multiply(operand float64) error {
	return c.applyOperation(historyOpMultiply, Multiply, operand)
}

// Divide divides the current value by operand.
func (c *Calculator) Divide(operand float64) error {
	return c.applyOperation(historyOpDivide, Divide, operand)
}

// Power raises the current value to the given exponent.
func (c *Calculator) Power(exponent float64) error {
	return c.applyOperation(historyOpPower, Power, exponent)
}

// applyOperation validates the operand, delegates to the binary operation
// with the current value as the left operand, and on success advances the
// value and appends a history record. On failure state is untouched and the
// operation's error is returned unchanged.
func (c *Calculator) applyOperation(name string, operation func(a, b float64) (float64, error), operand float64) error {
	ctx, span, finish := c.startInstrumentation(name)

	if _, err := ValidateNumber(operand); err != nil {
		finish(ctx, span, err)
		return err
	}

	result, err := operation(c.value, operand)
	if err != nil {
		finish(ctx, span, err)
		return err
	}

	c.value = result
	c.history = append(c.history, buildHistoryRecord(result, name, operand))

	finish(ctx, span, nil)

	return nil
}

// Set replaces the current value directly, bypassing arithmetic.
// The value is validated and recorded as a "set" history entry.
func (c *Calculator) Set(value float64) error {
	ctx, span, finish := c.startInstrumentation(historyOpSet)

	if _, err := ValidateNumber(value); err != nil {
		finish(ctx, span, err)
		return err
	}

	c.value = value
	c.history = append(c.history, buildHistoryRecord(value, historyOpSet, value))

	finish(ctx, span, nil)

	return nil
}

// Clear resets the value to zero and truncates the history to a single fresh
// "clear" record. It never fails.
func (c *Calculator) Clear() {
	ctx, span, finish := c.startInstrumentation(historyOpClear)

	c.value = 0.0
	c.history = c.history[:0]
	c.history = append(c.history, buildHistoryRecord(0.0, historyOpClear))

	finish(ctx, span, nil)
}

// Undo removes the most recent history record and restores the value of the
// one before it. The initial record can never itself be undone: once it is
// the only entry left, Undo fails with ErrNothingToUndo.
func (c *Calculator) Undo() error {
	ctx, span, finish := c.startInstrumentation("undo")

	if len(c.history) <= 1 {
		finish(ctx, span, ErrNothingToUndo)
		return ErrNothingToUndo
	}

	c.history = c.history[:len(c.history)-1]
	c.value = c.history[len(c.history)-1].Value

	finish(ctx, span, nil)

	return nil
}

// Copy produces an independent Calculator with the same value and history.
// Subsequent mutation of either instance never affects the other. The copy
// gets a fresh ID; configured observability collectors are shared.
func (c *Calculator) Copy() *Calculator {
	return &Calculator{
		id:               uuid.New(),
		value:            c.value,
		history:          c.History(),
		logger:           c.logger,
		contextualLogger: c.contextualLogger,
		metricsCollector: c.metricsCollector,
		tracingCollector: c.tracingCollector,
	}
}

// Equal reports whether both calculators hold the same current value.
// History and operand trails are deliberately not part of equality.
func (c *Calculator) Equal(other *Calculator) bool {
	if other == nil {
		return false
	}

	return c.value == other.value
}

// Hash returns a hash consistent with Equal: equal values hash identically.
func (c *Calculator) Hash() uint64 {
	if c.value == 0 {
		// -0.0 == 0.0, so both must hash alike.
		return math.Float64bits(0)
	}

	return math.Float64bits(c.value)
}

func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(id=%s, value=%v, history_len=%d)", c.id, c.value, len(c.history))
}
