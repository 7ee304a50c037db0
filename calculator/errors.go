package calculator

import (
	"errors"
	"fmt"
)

// Kind sentinels for the error taxonomy. Every typed error below unwraps to
// exactly one of these, so callers can branch with errors.Is without caring
// about the concrete type.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrOutOfRange     = errors.New("value out of range")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")

	// ErrNothingToUndo is returned by Calculator.Undo when only the initial
	// history record remains.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// InvalidInputError reports an operand that is not a finite real number or
// violates a domain precondition (e.g. zero raised to a negative power).
type InvalidInputError struct {
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Reason, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// OutOfRangeError reports a value outside explicit caller-supplied bounds.
// A nil bound means that side was unbounded; both are recorded for diagnostics.
type OutOfRangeError struct {
	Value float64
	Min   *float64
	Max   *float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range %s: %v", formatBounds(e.Min, e.Max), e.Value)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

func formatBounds(minVal, maxVal *float64) string {
	lower := "-inf"
	if minVal != nil {
		lower = fmt.Sprintf("%v", *minVal)
	}

	upper := "+inf"
	if maxVal != nil {
		upper = fmt.Sprintf("%v", *maxVal)
	}

	return fmt.Sprintf("[%s, %s]", lower, upper)
}

// DivisionByZeroError reports a zero divisor or modulus, carrying the
// numerator/dividend of the failed operation.
type DivisionByZeroError struct {
	Numerator float64
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %v", e.Numerator)
}

func (e *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// OverflowError reports a computed (or pre-checked) result that would be
// infinite, carrying the operation name and its operands.
type OverflowError struct {
	Operation string
	Operands  []float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow in %s: %v", e.Operation, e.Operands)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
