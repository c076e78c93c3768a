package ops

import (
	"math"

	"github.com/katalvlaran/terragrid/grid"
)

// CombineMode selects the elementwise merge function for Combine.
type CombineMode int

const (
	// CombineAdd sums both grids; callers re-normalize afterwards.
	CombineAdd CombineMode = iota
	// CombineMax keeps the per-cell maximum (commutative, associative).
	CombineMax
	// CombineMin keeps the per-cell minimum (commutative, associative).
	CombineMin
	// CombineWeightedAverage blends w·a + (1−w)·b; commutative only at w=0.5.
	CombineWeightedAverage
)

// String implements fmt.Stringer for diagnostics.
func (m CombineMode) String() string {
	switch m {
	case CombineAdd:
		return "Add"
	case CombineMax:
		return "Max"
	case CombineMin:
		return "Min"
	case CombineWeightedAverage:
		return "WeightedAverage"
	default:
		return "CombineMode(?)"
	}
}

// Combine merges the working grid elementwise with a second grid of
// identical dimensions. The second grid is borrowed read-only: Apply
// never writes to it.
type Combine struct {
	mode   CombineMode
	other  *grid.Grid
	weight float64 // WeightedAverage only
}

// NewCombine creates an Add/Max/Min Combine against other.
// Returns ErrOpParam for a nil grid, a labeled grid (labeled grids
// support no combine modes), or CombineWeightedAverage (which carries a
// weight — use NewWeightedCombine).
func NewCombine(mode CombineMode, other *grid.Grid) (*Combine, error) {
	if mode == CombineWeightedAverage {
		return nil, opErrorf(KindCombine, "WeightedAverage requires a weight, use NewWeightedCombine", ErrOpParam)
	}
	if mode != CombineAdd && mode != CombineMax && mode != CombineMin {
		return nil, opErrorf(KindCombine, "unknown mode %d", ErrOpParam, int(mode))
	}
	if err := validateCombineOperand(other); err != nil {
		return nil, err
	}

	return &Combine{mode: mode, other: other}, nil
}

// NewWeightedCombine creates a WeightedAverage Combine:
// out = w·working + (1−w)·other. Weight must lie in [0,1].
func NewWeightedCombine(other *grid.Grid, w float64) (*Combine, error) {
	if math.IsNaN(w) || w < 0 || w > 1 {
		return nil, opErrorf(KindCombine, "weight %g outside [0,1]", ErrOpParam, w)
	}
	if err := validateCombineOperand(other); err != nil {
		return nil, err
	}

	return &Combine{mode: CombineWeightedAverage, other: other, weight: w}, nil
}

func validateCombineOperand(other *grid.Grid) error {
	if other == nil {
		return opErrorf(KindCombine, "second grid", grid.ErrNilGrid)
	}
	if other.Kind() != grid.Scalar {
		return opErrorf(KindCombine, "second grid is %s", ErrKindMismatch, other.Kind())
	}

	return nil
}

// Kind returns KindCombine.
func (o *Combine) Kind() Kind { return KindCombine }

func (o *Combine) isOp() {}

// Mode returns the elementwise merge function.
func (o *Combine) Mode() CombineMode { return o.mode }

// Other returns the borrowed second grid. Callers must treat it as
// read-only; the pipeline uses it for dimension pre-validation.
func (o *Combine) Other() *grid.Grid { return o.other }

// Apply merges g with the second grid cell by cell into a fresh grid.
// Fails with ErrDimensionMismatch before any write if the grids differ
// in size, and with ErrKindMismatch on a labeled working grid.
// Complexity: O(W×H) time and memory.
func (o *Combine) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindCombine, g); err != nil {
		return nil, err
	}
	if !g.SameDimensions(o.other) {
		return nil, opErrorf(KindCombine, "working %dx%d vs other %dx%d",
			ErrDimensionMismatch, g.Width(), g.Height(), o.other.Width(), o.other.Height())
	}

	w, h := g.Width(), g.Height()
	a, _ := g.Values()
	b, _ := o.other.Values()
	out := make([]float64, w*h)

	switch o.mode {
	case CombineAdd:
		for i := range out {
			out[i] = a[i] + b[i]
		}
	case CombineMax:
		for i := range out {
			out[i] = math.Max(a[i], b[i])
		}
	case CombineMin:
		for i := range out {
			out[i] = math.Min(a[i], b[i])
		}
	case CombineWeightedAverage:
		wA, wB := o.weight, 1-o.weight
		for i := range out {
			out[i] = wA*a[i] + wB*b[i]
		}
	}

	return grid.FromValues(w, h, out)
}
