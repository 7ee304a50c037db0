package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardedcalc/guarded-calculator-go/calculator"
)

func Test_Chain_AppliesStepsInOrder(t *testing.T) {
	calc, err := calculator.NewCalculator(2)
	require.NoError(t, err)

	chain := calc.Chain().Add(3).Multiply(4).Subtract(10).Divide(2).Power(2)

	require.NoError(t, chain.Err())
	assert.Equal(t, 25.0, chain.Value())
	assert.Same(t, calc, chain.Calculator(), "the chain mutates the bound calculator, not a copy")
	assert.Equal(t, 25.0, calc.Value())
}

func Test_Chain_StopsAtFirstFailure(t *testing.T) {
	calc, err := calculator.NewCalculator(10)
	require.NoError(t, err)

	chain := calc.Chain().Add(5).Divide(0).Multiply(100)

	assert.ErrorIs(t, chain.Err(), calculator.ErrDivisionByZero)
	assert.Equal(t, 15.0, chain.Value(), "steps after the failure must not run")
	assert.Len(t, calc.History(), 2)
}

func Test_Chain_SetClearUndo(t *testing.T) {
	calc, err := calculator.NewCalculator(1)
	require.NoError(t, err)

	chain := calc.Chain().Set(7).Add(3).Undo()
	require.NoError(t, chain.Err())
	assert.Equal(t, 7.0, chain.Value())

	chain = calc.Chain().Clear()
	require.NoError(t, chain.Err())
	assert.Equal(t, 0.0, calc.Value())
}

func Test_Chain_UndoFailurePropagates(t *testing.T) {
	calc, err := calculator.NewCalculator(1)
	require.NoError(t, err)

	chain := calc.Chain().Undo().Add(5)

	assert.ErrorIs(t, chain.Err(), calculator.ErrNothingToUndo)
	assert.Equal(t, 1.0, calc.Value())
}
