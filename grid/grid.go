package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size 2D container of terrain cells backed by a single
// flat row-major buffer (index = y·width + x). Width and height are
// immutable once constructed. Exactly one of vals/labels is populated,
// according to kind.
type Grid struct {
	w, h   int
	kind   Kind
	vals   []float64 // scalar cells, length w*h when kind==Scalar
	labels []Label   // labeled cells, length w*h when kind==Labeled
}

// New creates a w×h scalar Grid with every cell set to fill.
// Stage 1 (Validate): ensure w and h are positive.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the Grid or ErrInvalidDimension.
// Complexity: O(W×H) time and memory.
func New(w, h int, fill float64) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	vals := make([]float64, w*h)
	if fill != 0 {
		for i := range vals {
			vals[i] = fill
		}
	}

	return &Grid{w: w, h: h, kind: Scalar, vals: vals}, nil
}

// NewLabeled creates a w×h labeled Grid with every cell set to fill.
// Used by classification to produce the labeled output grid.
// Complexity: O(W×H) time and memory.
func NewLabeled(w, h int, fill Label) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	labels := make([]Label, w*h)
	if fill != "" {
		for i := range labels {
			labels[i] = fill
		}
	}

	return &Grid{w: w, h: h, kind: Labeled, labels: labels}, nil
}

// FromValues creates a scalar Grid that adopts vals as its backing
// buffer. len(vals) must equal w*h. The slice is not copied; callers
// hand over ownership.
func FromValues(w, h int, vals []float64) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	if len(vals) != w*h {
		return nil, fmt.Errorf("grid: FromValues: buffer length %d != %d×%d: %w",
			len(vals), w, h, ErrInvalidDimension)
	}

	return &Grid{w: w, h: h, kind: Scalar, vals: vals}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.h }

// Len returns the total cell count (width×height). Complexity: O(1).
func (g *Grid) Len() int { return g.w * g.h }

// Kind reports whether cells are scalar or labeled. Complexity: O(1).
func (g *Grid) Kind() Kind { return g.kind }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index maps (x,y) to the row-major flat index: y*w + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// Coordinate converts a row-major flat index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.w, idx / g.w
}

// At retrieves the scalar value at (x,y).
// Returns ErrOutOfBounds for invalid coordinates and ErrGridKind on a
// labeled grid. Complexity: O(1).
func (g *Grid) At(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, gridErrorf("At", x, y, ErrOutOfBounds)
	}
	if g.kind != Scalar {
		return 0, gridErrorf("At", x, y, ErrGridKind)
	}

	return g.vals[g.index(x, y)], nil
}

// Set assigns the scalar value v at (x,y).
// Returns ErrOutOfBounds for invalid coordinates and ErrGridKind on a
// labeled grid. Complexity: O(1).
func (g *Grid) Set(x, y int, v float64) error {
	if !g.InBounds(x, y) {
		return gridErrorf("Set", x, y, ErrOutOfBounds)
	}
	if g.kind != Scalar {
		return gridErrorf("Set", x, y, ErrGridKind)
	}
	g.vals[g.index(x, y)] = v

	return nil
}

// LabelAt retrieves the label at (x,y).
// Returns ErrOutOfBounds for invalid coordinates and ErrGridKind on a
// scalar grid. Complexity: O(1).
func (g *Grid) LabelAt(x, y int) (Label, error) {
	if !g.InBounds(x, y) {
		return "", gridErrorf("LabelAt", x, y, ErrOutOfBounds)
	}
	if g.kind != Labeled {
		return "", gridErrorf("LabelAt", x, y, ErrGridKind)
	}

	return g.labels[g.index(x, y)], nil
}

// SetLabel assigns label l at (x,y).
// Returns ErrOutOfBounds for invalid coordinates and ErrGridKind on a
// scalar grid. Complexity: O(1).
func (g *Grid) SetLabel(x, y int, l Label) error {
	if !g.InBounds(x, y) {
		return gridErrorf("SetLabel", x, y, ErrOutOfBounds)
	}
	if g.kind != Labeled {
		return gridErrorf("SetLabel", x, y, ErrGridKind)
	}
	g.labels[g.index(x, y)] = l

	return nil
}

// ForEach visits every scalar cell exactly once in row-major order,
// passing (x, y, value). No-op on a labeled grid.
// Complexity: O(W×H).
func (g *Grid) ForEach(f func(x, y int, v float64)) {
	if g.kind != Scalar {
		return
	}
	for y := 0; y < g.h; y++ {
		base := y * g.w
		for x := 0; x < g.w; x++ {
			f(x, y, g.vals[base+x])
		}
	}
}

// ForEachLabel visits every labeled cell exactly once in row-major
// order, passing (x, y, label). No-op on a scalar grid.
// Complexity: O(W×H).
func (g *Grid) ForEachLabel(f func(x, y int, l Label)) {
	if g.kind != Labeled {
		return
	}
	for y := 0; y < g.h; y++ {
		base := y * g.w
		for x := 0; x < g.w; x++ {
			f(x, y, g.labels[base+x])
		}
	}
}

// Values returns the underlying scalar buffer in row-major order.
// The slice is shared, not copied; callers must not resize it.
// Returns ErrGridKind on a labeled grid.
func (g *Grid) Values() ([]float64, error) {
	if g.kind != Scalar {
		return nil, fmt.Errorf("Grid.Values: %w", ErrGridKind)
	}

	return g.vals, nil
}

// MinMax scans all scalar cells once and returns the minimum and
// maximum value. Returns ErrGridKind on a labeled grid.
// Complexity: O(W×H).
func (g *Grid) MinMax() (min, max float64, err error) {
	if g.kind != Scalar {
		return 0, 0, fmt.Errorf("Grid.MinMax: %w", ErrGridKind)
	}
	min, max = g.vals[0], g.vals[0]
	for _, v := range g.vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max, nil
}

// Clone returns a deep copy of the Grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	out := &Grid{w: g.w, h: g.h, kind: g.kind}
	if g.vals != nil {
		out.vals = make([]float64, len(g.vals))
		copy(out.vals, g.vals)
	}
	if g.labels != nil {
		out.labels = make([]Label, len(g.labels))
		copy(out.labels, g.labels)
	}

	return out
}

// Equal reports whether two grids have identical dimensions, kind, and
// cell-for-cell contents. Exact float64 comparison; intended for
// determinism checks, not tolerance-based numeric comparison.
// Complexity: O(W×H).
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.w != o.w || g.h != o.h || g.kind != o.kind {
		return false
	}
	switch g.kind {
	case Scalar:
		for i, v := range g.vals {
			if v != o.vals[i] {
				return false
			}
		}
	case Labeled:
		for i, l := range g.labels {
			if l != o.labels[i] {
				return false
			}
		}
	}

	return true
}

// SameDimensions reports whether o shares this grid's width and height.
// Complexity: O(1).
func (g *Grid) SameDimensions(o *Grid) bool {
	return o != nil && g.w == o.w && g.h == o.h
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(W×H) for string construction.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteByte('[')
		for x := 0; x < g.w; x++ {
			if x > 0 {
				b.WriteString(", ")
			}
			if g.kind == Scalar {
				fmt.Fprintf(&b, "%g", g.vals[g.index(x, y)])
			} else {
				b.WriteString(string(g.labels[g.index(x, y)]))
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
