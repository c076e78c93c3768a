package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/ops"
)

// TestNewErode_Errors verifies parameter validation.
func TestNewErode_Errors(t *testing.T) {
	_, err := ops.NewErode(-1, 0.5)
	assert.ErrorIs(t, err, ops.ErrOpParam)
	_, err = ops.NewErode(1, -0.1)
	assert.ErrorIs(t, err, ops.ErrOpParam)
	_, err = ops.NewErode(1, 1.5)
	assert.ErrorIs(t, err, ops.ErrOpParam)
}

// TestErode_ZeroStrengthIdentity verifies strength 0 transfers nothing
// over any number of iterations.
func TestErode_ZeroStrengthIdentity(t *testing.T) {
	in, err := grid.FromValues(3, 3, []float64{
		5, 1, 2,
		0, 9, 3,
		4, 2, 7,
	})
	require.NoError(t, err)

	op, err := ops.NewErode(10, 0)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

// TestErode_SinglePeak verifies a single pass moves strength × drop
// from the peak to its steepest (first-in-scan-order) lower neighbor.
func TestErode_SinglePeak(t *testing.T) {
	// Peak at (1,1)=8; all neighbors 0, so every drop ties at 8 and the
	// N neighbor (1,0) must win by scan order.
	in, err := grid.FromValues(3, 3, []float64{
		0, 0, 0,
		0, 8, 0,
		0, 0, 0,
	})
	require.NoError(t, err)

	op, err := ops.NewErode(1, 0.5)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	peak, err := out.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, peak, 1e-12) // lost 0.5·8

	north, err := out.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, north, 1e-12) // gained 0.5·8

	// No other neighbor received anything.
	for _, c := range [][2]int{{0, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		v, err := out.At(c[0], c[1])
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, "(%d,%d)", c[0], c[1])
	}
}

// TestErode_SteepestWins verifies the steepest drop is chosen over an
// earlier-but-shallower one in the scan order.
func TestErode_SteepestWins(t *testing.T) {
	// Center 8: N neighbor is 6 (drop 2), S neighbor is 0 (drop 8).
	in, err := grid.FromValues(3, 3, []float64{
		6, 6, 6,
		6, 8, 6,
		6, 0, 6,
	})
	require.NoError(t, err)

	op, err := ops.NewErode(1, 0.25)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	south, err := out.At(1, 2)
	require.NoError(t, err)
	// S receives 0.25·8 from the center, plus 0.25·6 from each of
	// (0,1), (2,1), (0,2), (2,2) — for all four, (1,2)=0 is the
	// steepest lower neighbor (drop 6).
	assert.InDelta(t, 0+0.25*8+4*(0.25*6), south, 1e-12)

	center, err := out.At(1, 1)
	require.NoError(t, err)
	// Center loses to S; nothing flows into the center (it is a peak).
	assert.InDelta(t, 8-0.25*8, center, 1e-12)
}

// TestErode_LocalMinimumUntouched verifies cells with no strictly lower
// neighbor give up nothing.
func TestErode_LocalMinimumUntouched(t *testing.T) {
	in, err := grid.New(3, 3, 1) // perfectly flat
	require.NoError(t, err)

	op, err := ops.NewErode(5, 0.9)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(out), "flat grid has only local minima")
}

// TestErode_MassConserved verifies total elevation is preserved by the
// transfers.
func TestErode_MassConserved(t *testing.T) {
	in, err := grid.FromValues(4, 4, []float64{
		3, 1, 4, 1,
		5, 9, 2, 6,
		5, 3, 5, 8,
		9, 7, 9, 3,
	})
	require.NoError(t, err)
	sumOf := func(g *grid.Grid) float64 {
		var s float64
		g.ForEach(func(_, _ int, v float64) { s += v })
		return s
	}
	before := sumOf(in)

	op, err := ops.NewErode(7, 0.3)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)
	assert.InDelta(t, before, sumOf(out), 1e-9)
}

// TestErode_SnapshotPerIteration verifies the input grid is never
// mutated and repeated applies are deterministic.
func TestErode_SnapshotPerIteration(t *testing.T) {
	in, err := grid.FromValues(3, 1, []float64{9, 3, 0})
	require.NoError(t, err)
	before := in.Clone()

	op, err := ops.NewErode(3, 0.5)
	require.NoError(t, err)
	a, err := op.Apply(in)
	require.NoError(t, err)
	b, err := op.Apply(in)
	require.NoError(t, err)

	assert.True(t, in.Equal(before))
	assert.True(t, a.Equal(b))
}

// TestErode_LabeledRejected verifies the scalar-only contract.
func TestErode_LabeledRejected(t *testing.T) {
	lg, err := grid.NewLabeled(2, 2, "x")
	require.NoError(t, err)

	op, err := ops.NewErode(1, 0.5)
	require.NoError(t, err)
	_, err = op.Apply(lg)
	assert.ErrorIs(t, err, ops.ErrKindMismatch)
}
