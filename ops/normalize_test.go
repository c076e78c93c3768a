package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/ops"
)

// TestNormalize_Params verifies target-range validation.
func TestNormalize_Params(t *testing.T) {
	_, err := ops.NewNormalize(1, 0)
	assert.ErrorIs(t, err, ops.ErrOpParam)

	// Equal bounds are allowed: everything maps to that single value.
	_, err = ops.NewNormalize(0.5, 0.5)
	assert.NoError(t, err)
}

// TestNormalize_Range verifies every output cell lies in the target
// range and the observed extremes map exactly onto the bounds.
func TestNormalize_Range(t *testing.T) {
	in, err := grid.FromValues(3, 2, []float64{-4, 0, 2, 6, 1, -1})
	require.NoError(t, err)

	op, err := ops.NewNormalize(0, 1)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	out.ForEach(func(_, _ int, v float64) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	})

	lo, err := out.At(0, 0) // original minimum −4
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	hi, err := out.At(0, 1) // original maximum 6
	require.NoError(t, err)
	assert.Equal(t, 1.0, hi)
}

// TestNormalize_FlatGrid verifies the degenerate all-equal case maps
// every cell to the target minimum.
func TestNormalize_FlatGrid(t *testing.T) {
	in, err := grid.New(4, 4, 0.7)
	require.NoError(t, err)

	op, err := ops.NewNormalize(0.2, 0.9)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	out.ForEach(func(_, _ int, v float64) {
		assert.Equal(t, 0.2, v)
	})
}

// TestNormalize_CustomRange verifies linear rescale into [−1,1].
func TestNormalize_CustomRange(t *testing.T) {
	in, err := grid.FromValues(3, 1, []float64{0, 5, 10})
	require.NoError(t, err)

	op, err := ops.NewNormalize(-1, 1)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	want := []float64{-1, 0, 1}
	for x, wv := range want {
		v, err := out.At(x, 0)
		require.NoError(t, err)
		assert.InDelta(t, wv, v, 1e-12)
	}
}

// TestNormalize_LabeledRejected verifies the scalar-only contract.
func TestNormalize_LabeledRejected(t *testing.T) {
	lg, err := grid.NewLabeled(2, 2, "x")
	require.NoError(t, err)

	op, err := ops.NewNormalize(0, 1)
	require.NoError(t, err)
	_, err = op.Apply(lg)
	assert.ErrorIs(t, err, ops.ErrKindMismatch)
}
