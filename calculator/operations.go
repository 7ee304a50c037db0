package calculator

import (
	"math"
)

// OverflowThreshold is the fixed limit used by the multiplication pre-check.
// The pre-check catches near-boundary products that the post-hoc infinity
// check might miss due to rounding; the constant is intentionally kept at
// 1e307 even though it may reject a few representable products near the edge.
const OverflowThreshold = 1e307

// Operation names as they appear in OverflowError and history records.
const (
	opAddition       = "addition"
	opSubtraction    = "subtraction"
	opMultiplication = "multiplication"
	opDivision       = "division"
	opExponentiation = "exponentiation"
)

func validateOperands(a, b float64) error {
	if _, err := ValidateNumber(a); err != nil {
		return err
	}

	if _, err := ValidateNumber(b); err != nil {
		return err
	}

	return nil
}

// Add returns the sum of a and b.
// Commutative with identity 0; fails with OverflowError if the sum is infinite.
func Add(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	result := a + b

	if math.IsInf(result, 0) {
		return 0, &OverflowError{Operation: opAddition, Operands: []float64{a, b}}
	}

	return result, nil
}

// Subtract returns a minus b.
// Identity 0, self-inverse; fails with OverflowError if the difference is infinite.
func Subtract(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	result := a - b

	if math.IsInf(result, 0) {
		return 0, &OverflowError{Operation: opSubtraction, Operands: []float64{a, b}}
	}

	return result, nil
}

// Multiply returns the product of a and b.
//
// Before computing it runs a pre-check against OverflowThreshold: when both
// operands are non-zero and |a| exceeds the threshold divided by |b| the
// multiplication is rejected without being performed. An infinite product
// slipping past the pre-check is still caught afterwards.
func Multiply(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	if a != 0 && b != 0 && math.Abs(a) > OverflowThreshold/math.Abs(b) {
		return 0, &OverflowError{Operation: opMultiplication, Operands: []float64{a, b}}
	}

	result := a * b

	if math.IsInf(result, 0) {
		return 0, &OverflowError{Operation: opMultiplication, Operands: []float64{a, b}}
	}

	return result, nil
}

// Divide returns a divided by b.
// Fails with DivisionByZeroError (carrying a) when b is zero, and with
// OverflowError when the quotient is infinite.
func Divide(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	if b == 0 {
		return 0, &DivisionByZeroError{Numerator: a}
	}

	result := a / b

	if math.IsInf(result, 0) {
		return 0, &OverflowError{Operation: opDivision, Operands: []float64{a, b}}
	}

	return result, nil
}

// SafeDivide returns a divided by b, substituting defaultValue when the
// division would fail with a zero divisor or an infinite quotient.
//
// It is the non-failing variant of Divide for call sites that prefer a
// sentinel value over error handling. The operands and defaultValue itself
// must still be finite numbers.
func SafeDivide(a, b, defaultValue float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	if _, err := ValidateNumber(defaultValue); err != nil {
		return 0, err
	}

	if b == 0 {
		return defaultValue, nil
	}

	result := a / b

	if math.IsInf(result, 0) {
		return defaultValue, nil
	}

	return result, nil
}

// Power returns base raised to exponent.
//
// Fails with InvalidInputError when base is zero and exponent negative
// (undefined), or when base is negative and exponent is not an integer (the
// result would be complex). An infinite result fails with OverflowError.
func Power(base, exponent float64) (float64, error) {
	if err := validateOperands(base, exponent); err != nil {
		return 0, err
	}

	if base == 0 && exponent < 0 {
		return 0, &InvalidInputError{Value: base, Reason: "zero cannot be raised to a negative power"}
	}

	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, &InvalidInputError{Value: base, Reason: "negative base requires an integer exponent"}
	}

	result := math.Pow(base, exponent)

	// math.Pow signals domain errors through NaN rather than a returned error.
	if math.IsNaN(result) {
		return 0, &InvalidInputError{Value: base, Reason: "undefined result of exponentiation"}
	}

	if math.IsInf(result, 0) {
		return 0, &OverflowError{Operation: opExponentiation, Operands: []float64{base, exponent}}
	}

	return result, nil
}

// Modulo returns a mod b using the floored convention: the result takes the
// divisor's sign, so 0 <= result < |b| for positive b, and the reconstruction
// identity a == floor(a/b)*b + Modulo(a, b) holds.
// Fails with DivisionByZeroError (carrying a) when b is zero.
func Modulo(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	if b == 0 {
		return 0, &DivisionByZeroError{Numerator: a}
	}

	result := math.Mod(a, b)

	// math.Mod follows the dividend's sign; shift into the divisor's sign.
	if result != 0 && (result < 0) != (b < 0) {
		result += b
	}

	return result, nil
}
