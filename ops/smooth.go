package ops

import (
	"github.com/katalvlaran/terragrid/grid"
)

// Smooth replaces each scalar cell with the box-kernel average of the
// in-bounds Chebyshev neighborhood (including the cell itself). Every
// read comes from the pre-smooth grid, so no cell's smoothed value is
// computed from already-smoothed neighbors.
type Smooth struct {
	radius int
}

// NewSmooth creates a Smooth with the given kernel radius.
// Radius 0 is the identity transform. Returns ErrOpParam for a
// negative radius.
func NewSmooth(radius int) (*Smooth, error) {
	if radius < 0 {
		return nil, opErrorf(KindSmooth, "radius %d", ErrOpParam, radius)
	}

	return &Smooth{radius: radius}, nil
}

// Kind returns KindSmooth.
func (o *Smooth) Kind() Kind { return KindSmooth }

func (o *Smooth) isOp() {}

// Radius returns the kernel radius.
func (o *Smooth) Radius() int { return o.radius }

// Apply writes the box average of each cell's clamped (2r+1)² window
// into a fresh grid. Border cells average over fewer neighbors (clamp,
// never wrap), matching grid.Neighbors semantics. Requires a scalar grid.
// Complexity: O(W×H×r²) time, O(W×H) memory.
func (o *Smooth) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindSmooth, g); err != nil {
		return nil, err
	}
	if o.radius == 0 {
		return g.Clone(), nil
	}

	w, h := g.Width(), g.Height()
	src, _ := g.Values() // kind checked above
	out := make([]float64, w*h)

	for y := 0; y < h; y++ {
		y0, y1 := y-o.radius, y+o.radius
		if y0 < 0 {
			y0 = 0
		}
		if y1 >= h {
			y1 = h - 1
		}
		for x := 0; x < w; x++ {
			x0, x1 := x-o.radius, x+o.radius
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}

			var sum float64
			for ny := y0; ny <= y1; ny++ {
				base := ny * w
				for nx := x0; nx <= x1; nx++ {
					sum += src[base+nx]
				}
			}
			out[y*w+x] = sum / float64((y1-y0+1)*(x1-x0+1))
		}
	}

	return grid.FromValues(w, h, out)
}
