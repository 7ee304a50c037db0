package calculator

import (
	"math"
)

// ValidateNumber ensures v is a finite real number.
//
// It is the universal gate: every operation in this package runs its operands
// through it before use. NaN and both infinities are rejected with an
// InvalidInputError; every other float64 passes through unchanged.
func ValidateNumber(v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, &InvalidInputError{Value: v, Reason: "NaN is not allowed"}
	}

	if math.IsInf(v, 0) {
		return 0, &InvalidInputError{Value: v, Reason: "infinity is not allowed"}
	}

	return v, nil
}

// ValidatePositive ensures v is positive, or non-negative when allowZero is true.
// Negative values are rejected regardless of allowZero.
func ValidatePositive(v float64, allowZero bool) (float64, error) {
	if _, err := ValidateNumber(v); err != nil {
		return 0, err
	}

	if allowZero {
		if v < 0 {
			return 0, &InvalidInputError{Value: v, Reason: "value must be non-negative"}
		}
	} else if v <= 0 {
		return 0, &InvalidInputError{Value: v, Reason: "value must be positive"}
	}

	return v, nil
}

// ValidateNonZero ensures v is not exactly zero.
// Exact equality is deliberate: no epsilon allowance is made for values close to zero.
func ValidateNonZero(v float64) (float64, error) {
	if _, err := ValidateNumber(v); err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, &InvalidInputError{Value: v, Reason: "value must not be zero"}
	}

	return v, nil
}

// ValidateRange ensures v lies within [minVal, maxVal], or (minVal, maxVal)
// when inclusive is false. A nil bound means unbounded on that side; the
// single inclusive flag applies to both bounds. Violations yield an
// OutOfRangeError carrying the bounds for diagnostics.
func ValidateRange(v float64, minVal, maxVal *float64, inclusive bool) (float64, error) {
	if _, err := ValidateNumber(v); err != nil {
		return 0, err
	}

	if minVal != nil {
		if (inclusive && v < *minVal) || (!inclusive && v <= *minVal) {
			return 0, &OutOfRangeError{Value: v, Min: minVal, Max: maxVal}
		}
	}

	if maxVal != nil {
		if (inclusive && v > *maxVal) || (!inclusive && v >= *maxVal) {
			return 0, &OutOfRangeError{Value: v, Min: minVal, Max: maxVal}
		}
	}

	return v, nil
}

// Bound returns a pointer to v, for use as a ValidateRange bound.
func Bound(v float64) *float64 {
	return &v
}
