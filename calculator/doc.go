// Package calculator provides overflow- and NaN-guarded arithmetic with a
// stateful, undoable calculator on top.
//
// The package is organized in three layers:
//   - Validators: pure guards on numeric values (finite, positive, non-zero,
//     in range)
//   - Operations: binary arithmetic with overflow detection (Add, Subtract,
//     Multiply, Divide, SafeDivide, Power, Modulo)
//   - Calculator: a stateful wrapper that composes Operations and maintains
//     an append-only history of applied operations with undo
//
// Every entry point rejects NaN and infinity, and every failed call leaves
// calculator state exactly as it was. Failures carry typed errors that
// unwrap to kind sentinels, so callers can branch with errors.Is or extract
// diagnostic context with errors.As.
//
// Common usage pattern:
//
//	calc, err := calculator.NewCalculator(10)
//	if err != nil {
//		// handle error
//	}
//
//	if err := calc.Add(5); err != nil {
//		// handle error
//	}
//
//	// or chained, with the first error deferred to the end
//	result := calc.Chain().Add(5).Multiply(2)
//	if result.Err() != nil {
//		// handle error
//	}
//	current := result.Value()
//
// A Calculator instance is a single-threaded value object: it never blocks,
// never performs I/O, and is not safe for concurrent mutation. Callers that
// need concurrent access must serialize it externally.
package calculator
