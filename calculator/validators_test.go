package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardedcalc/guarded-calculator-go/calculator"
)

func Test_ValidateNumber_AcceptsFiniteValues(t *testing.T) {
	finiteValues := []float64{
		0, -0.0, 1, -1, 0.5, -0.5, 1e-300, -1e-300, 1e308, -1e308,
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
	}

	for _, value := range finiteValues {
		validated, err := calculator.ValidateNumber(value)

		require.NoError(t, err)
		assert.Equal(t, value, validated, "value should pass through unchanged")
	}
}

func Test_ValidateNumber_RejectsNaNAndInfinity(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "NaN", value: math.NaN()},
		{name: "positive infinity", value: math.Inf(1)},
		{name: "negative infinity", value: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.ValidateNumber(tt.value)

			require.Error(t, err)
			assert.ErrorIs(t, err, calculator.ErrInvalidInput)

			var invalidInput *calculator.InvalidInputError
			require.ErrorAs(t, err, &invalidInput)

			if math.IsNaN(tt.value) {
				assert.True(t, math.IsNaN(invalidInput.Value))
			} else {
				assert.Equal(t, tt.value, invalidInput.Value)
			}
		})
	}
}

func Test_ValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		allowZero bool
		wantErr   bool
	}{
		{name: "positive value", value: 1.5, allowZero: false, wantErr: false},
		{name: "positive value with zero allowed", value: 1.5, allowZero: true, wantErr: false},
		{name: "zero rejected by default", value: 0, allowZero: false, wantErr: true},
		{name: "zero accepted when allowed", value: 0, allowZero: true, wantErr: false},
		{name: "negative rejected", value: -1, allowZero: false, wantErr: true},
		{name: "negative rejected even with zero allowed", value: -1, allowZero: true, wantErr: true},
		{name: "NaN rejected", value: math.NaN(), allowZero: true, wantErr: true},
		{name: "infinity rejected", value: math.Inf(1), allowZero: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := calculator.ValidatePositive(tt.value, tt.allowZero)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, calculator.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, validated)
		})
	}
}

func Test_ValidateNonZero(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "positive value", value: 0.001, wantErr: false},
		{name: "negative value", value: -42, wantErr: false},
		{name: "exact zero", value: 0, wantErr: true},
		{name: "negative zero", value: math.Copysign(0, -1), wantErr: true},
		{name: "near zero passes, no epsilon allowance", value: 1e-308, wantErr: false},
		{name: "NaN rejected", value: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := calculator.ValidateNonZero(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, calculator.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, validated)
		})
	}
}

//nolint:funlen
func Test_ValidateRange(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		minVal    *float64
		maxVal    *float64
		inclusive bool
		wantErr   bool
	}{
		{name: "inside both bounds", value: 5, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: true, wantErr: false},
		{name: "on lower bound inclusive", value: 0, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: true, wantErr: false},
		{name: "on upper bound inclusive", value: 10, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: true, wantErr: false},
		{name: "on lower bound exclusive", value: 0, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: false, wantErr: true},
		{name: "on upper bound exclusive", value: 10, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: false, wantErr: true},
		{name: "below lower bound", value: -1, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: true, wantErr: true},
		{name: "above upper bound", value: 11, minVal: calculator.Bound(0), maxVal: calculator.Bound(10), inclusive: true, wantErr: true},
		{name: "no lower bound", value: -1e307, minVal: nil, maxVal: calculator.Bound(10), inclusive: true, wantErr: false},
		{name: "no upper bound", value: 1e307, minVal: calculator.Bound(0), maxVal: nil, inclusive: true, wantErr: false},
		{name: "no bounds at all", value: 123, minVal: nil, maxVal: nil, inclusive: false, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := calculator.ValidateRange(tt.value, tt.minVal, tt.maxVal, tt.inclusive)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, calculator.ErrOutOfRange)

				var outOfRange *calculator.OutOfRangeError
				require.ErrorAs(t, err, &outOfRange)
				assert.Equal(t, tt.value, outOfRange.Value)
				assert.Equal(t, tt.minVal, outOfRange.Min, "bounds must be recorded for diagnostics")
				assert.Equal(t, tt.maxVal, outOfRange.Max, "bounds must be recorded for diagnostics")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, validated)
		})
	}
}

func Test_ValidateRange_RejectsNonFiniteValueBeforeBoundsCheck(t *testing.T) {
	_, err := calculator.ValidateRange(math.NaN(), nil, nil, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrInvalidInput)
}
