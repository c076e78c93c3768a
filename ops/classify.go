package ops

import (
	"math"
	"sort"

	"github.com/katalvlaran/terragrid/grid"
)

// Band is one classification threshold: values in (previous upper
// bound, UpperBound] take Label. The last band is treated as unbounded
// above, so every scalar value matches exactly one band.
type Band struct {
	UpperBound float64
	Label      grid.Label
}

// Classify converts a scalar grid into a labeled grid by banding each
// elevation through an ascending threshold table.
type Classify struct {
	bands []Band
}

// NewClassify creates a Classify from an ascending threshold table.
// Stage 1 (Validate): at least one band, every label non-empty, every
// bound finite, bounds strictly ascending.
// Stage 2 (Prepare): deep-copy the table so later caller mutation
// cannot skew classification.
// Returns ErrOpParam on any violation.
// Complexity: O(len(bands)).
func NewClassify(bands []Band) (*Classify, error) {
	if len(bands) == 0 {
		return nil, opErrorf(KindClassify, "empty threshold table", ErrOpParam)
	}
	for i, b := range bands {
		if b.Label == "" {
			return nil, opErrorf(KindClassify, "band %d has empty label", ErrOpParam, i)
		}
		if math.IsNaN(b.UpperBound) || math.IsInf(b.UpperBound, 0) {
			return nil, opErrorf(KindClassify, "band %d bound %g", ErrOpParam, i, b.UpperBound)
		}
		if i > 0 && b.UpperBound <= bands[i-1].UpperBound {
			return nil, opErrorf(KindClassify, "bounds not strictly ascending at band %d (%g after %g)",
				ErrOpParam, i, b.UpperBound, bands[i-1].UpperBound)
		}
	}

	cp := make([]Band, len(bands))
	copy(cp, bands)

	return &Classify{bands: cp}, nil
}

// Kind returns KindClassify.
func (o *Classify) Kind() Kind { return KindClassify }

func (o *Classify) isOp() {}

// Bands returns a copy of the threshold table.
func (o *Classify) Bands() []Band {
	cp := make([]Band, len(o.bands))
	copy(cp, o.bands)

	return cp
}

// label assigns the band for value v: the first band whose upper bound
// is ≥ v (binary search). A value equal to a bound takes that band
// (half-open lower interval); a value above the last bound falls into
// the last band. Complexity: O(log len(bands)).
func (o *Classify) label(v float64) grid.Label {
	idx := sort.Search(len(o.bands), func(i int) bool {
		return o.bands[i].UpperBound >= v
	})
	if idx == len(o.bands) {
		idx = len(o.bands) - 1 // last band is unbounded above
	}

	return o.bands[idx].Label
}

// Apply converts every scalar cell into its band label, producing a
// labeled grid of identical dimensions. Applying Classify to an
// already-labeled grid fails with ErrKindMismatch: Combine cannot
// reintroduce scalars, so a second Classify is always a config mistake.
// Complexity: O(W×H×log len(bands)) time, O(W×H) memory.
func (o *Classify) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindClassify, g); err != nil {
		return nil, err
	}

	w, h := g.Width(), g.Height()
	out, err := grid.NewLabeled(w, h, "")
	if err != nil {
		return nil, err
	}
	src, _ := g.Values()
	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			// SetLabel cannot fail here: coordinates come from the loop
			// bounds and out is labeled by construction.
			_ = out.SetLabel(x, y, o.label(src[base+x]))
		}
	}

	return out, nil
}
