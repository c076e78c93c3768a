package ops

import (
	"math"

	"github.com/katalvlaran/terragrid/grid"
)

// Normalize linearly rescales every scalar cell into
// [TargetMin, TargetMax] based on the grid's observed global range.
type Normalize struct {
	targetMin, targetMax float64
}

// NewNormalize creates a Normalize into [lo, hi].
// Returns ErrOpParam if either bound is non-finite or lo > hi.
func NewNormalize(lo, hi float64) (*Normalize, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo > hi {
		return nil, opErrorf(KindNormalize, "target range [%g,%g]", ErrOpParam, lo, hi)
	}

	return &Normalize{targetMin: lo, targetMax: hi}, nil
}

// Kind returns KindNormalize.
func (o *Normalize) Kind() Kind { return KindNormalize }

func (o *Normalize) isOp() {}

// Apply scans the global min/max in one pass, then rescales every cell:
// the observed minimum maps to TargetMin and the maximum to TargetMax.
// A flat grid (min == max) becomes all TargetMin — defined behavior,
// not a division fault. Requires a scalar grid.
// Complexity: O(W×H) time and memory.
func (o *Normalize) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindNormalize, g); err != nil {
		return nil, err
	}

	min, max, _ := g.MinMax() // kind checked above
	w, h := g.Width(), g.Height()
	src, _ := g.Values()
	out := make([]float64, w*h)

	if min == max {
		for i := range out {
			out[i] = o.targetMin
		}

		return grid.FromValues(w, h, out)
	}

	scale := (o.targetMax - o.targetMin) / (max - min)
	for i, v := range src {
		out[i] = o.targetMin + (v-min)*scale
	}

	return grid.FromValues(w, h, out)
}
