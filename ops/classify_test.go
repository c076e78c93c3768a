package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/ops"
)

func terrainBands() []ops.Band {
	return []ops.Band{
		{UpperBound: 0.3, Label: "water"},
		{UpperBound: 0.6, Label: "plains"},
		{UpperBound: 1.0, Label: "mountain"},
	}
}

// TestNewClassify_Errors verifies threshold-table validation.
func TestNewClassify_Errors(t *testing.T) {
	cases := []struct {
		name  string
		bands []ops.Band
	}{
		{"Empty", nil},
		{"EmptyLabel", []ops.Band{{UpperBound: 0.5, Label: ""}}},
		{"NotAscending", []ops.Band{
			{UpperBound: 0.6, Label: "a"},
			{UpperBound: 0.3, Label: "b"},
		}},
		{"DuplicateBound", []ops.Band{
			{UpperBound: 0.5, Label: "a"},
			{UpperBound: 0.5, Label: "b"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ops.NewClassify(tc.bands)
			assert.ErrorIs(t, err, ops.ErrOpParam)
		})
	}
}

// TestClassify_Bands verifies band assignment including the half-open
// boundary rule: a value equal to an upper bound takes that band, and
// values above the last bound fall into the last band.
func TestClassify_Bands(t *testing.T) {
	op, err := ops.NewClassify(terrainBands())
	require.NoError(t, err)

	in, err := grid.FromValues(4, 2, []float64{
		0.0, 0.3, 0.31, 0.6,
		0.61, 1.0, 1.5, -2.0,
	})
	require.NoError(t, err)

	out, err := op.Apply(in)
	require.NoError(t, err)
	require.Equal(t, grid.Labeled, out.Kind())
	require.Equal(t, in.Width(), out.Width())
	require.Equal(t, in.Height(), out.Height())

	want := []grid.Label{
		"water", "water", "plains", "plains",
		"mountain", "mountain", "mountain", "water",
	}
	i := 0
	out.ForEachLabel(func(x, y int, l grid.Label) {
		assert.Equal(t, want[i], l, "cell (%d,%d)", x, y)
		i++
	})
}

// TestClassify_TotalityMonotonicity verifies every value gets exactly
// one label and labels never move to a lower band as values grow.
func TestClassify_TotalityMonotonicity(t *testing.T) {
	op, err := ops.NewClassify(terrainBands())
	require.NoError(t, err)

	bandRank := map[grid.Label]int{"water": 0, "plains": 1, "mountain": 2}

	vals := make([]float64, 101)
	for i := range vals {
		vals[i] = -0.5 + float64(i)*0.02 // sweep −0.5 … 1.5
	}
	in, err := grid.FromValues(101, 1, vals)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)

	prev := -1
	out.ForEachLabel(func(x, _ int, l grid.Label) {
		rank, ok := bandRank[l]
		require.True(t, ok, "unknown label %q at x=%d", l, x)
		assert.GreaterOrEqual(t, rank, prev, "band rank regressed at x=%d", x)
		prev = rank
	})
}

// TestClassify_SecondClassifyRejected verifies a labeled grid cannot be
// classified again.
func TestClassify_SecondClassifyRejected(t *testing.T) {
	op, err := ops.NewClassify(terrainBands())
	require.NoError(t, err)

	in, err := grid.New(2, 2, 0.5)
	require.NoError(t, err)
	labeled, err := op.Apply(in)
	require.NoError(t, err)

	_, err = op.Apply(labeled)
	assert.ErrorIs(t, err, ops.ErrKindMismatch)
}

// TestClassify_TableCopied verifies mutating the caller's band slice
// after construction does not affect classification.
func TestClassify_TableCopied(t *testing.T) {
	bands := terrainBands()
	op, err := ops.NewClassify(bands)
	require.NoError(t, err)
	bands[0].Label = "lava"

	in, err := grid.New(1, 1, 0.1)
	require.NoError(t, err)
	out, err := op.Apply(in)
	require.NoError(t, err)
	l, err := out.LabelAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Label("water"), l)
}
