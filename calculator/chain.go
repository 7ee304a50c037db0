package calculator

// Chain is a fluent facade over a Calculator for call sites that prefer
// method chaining over per-call error handling.
//
// Each step applies its operation only while no earlier step has failed; the
// first failure is retained and every later step becomes a no-op, so the
// underlying calculator is left in the state of the last successful step.
// Inspect the deferred error with Err after the terminal accessor:
//
//	chain := calc.Chain().Add(5).Multiply(2)
//	if chain.Err() != nil {
//		// handle error
//	}
//	result := chain.Value()
type Chain struct {
	calc *Calculator
	err  error
}

// Chain returns a chaining facade bound to this calculator.
// The facade mutates the calculator itself, not a copy.
func (c *Calculator) Chain() *Chain {
	return &Chain{calc: c}
}

func (ch *Chain) step(apply func() error) *Chain {
	if ch.err == nil {
		ch.err = apply()
	}

	return ch
}

// Add adds operand to the current value.
func (ch *Chain) Add(operand float64) *Chain {
	return ch.step(func() error { return ch.calc.Add(operand) })
}

// Subtract subtracts operand from the current value.
func (ch *Chain) Subtract(operand float64) *Chain {
	return ch.step(func() error { return ch.calc.Subtract(operand) })
}

// Multiply multiplies the current value by operand.
func (ch *Chain) Multiply(operand float64) *Chain {
	return ch.step(func() error { return ch.calc.Multiply(operand) })
}

// Divide divides the current value by operand.
func (ch *Chain) Divide(operand float64) *Chain {
	return ch.step(func() error { return ch.calc.Divide(operand) })
}

// Power raises the current value to the given exponent.
func (ch *Chain) Power(exponent float64) *Chain {
	return ch.step(func() error { return ch.calc.Power(exponent) })
}

// Set replaces the current value directly.
func (ch *Chain) Set(value float64) *Chain {
	return ch.step(func() error { return ch.calc.Set(value) })
}

// Clear resets the calculator. Like Calculator.Clear it cannot fail, but it
// is still skipped once an earlier step has failed.
func (ch *Chain) Clear() *Chain {
	return ch.step(func() error {
		ch.calc.Clear()
		return nil
	})
}

// Undo reverts the most recent operation.
func (ch *Chain) Undo() *Chain {
	return ch.step(func() error { return ch.calc.Undo() })
}

// Value returns the underlying calculator's current value.
func (ch *Chain) Value() float64 {
	return ch.calc.Value()
}

// Err returns the first error any step produced, or nil.
func (ch *Chain) Err() error {
	return ch.err
}

// Calculator returns the underlying calculator.
func (ch *Chain) Calculator() *Calculator {
	return ch.calc
}
