package ops

import (
	"math"

	"github.com/katalvlaran/terragrid/grid"
)

// Erode runs a hydraulic-style steepest-descent pass: each iteration
// moves a fraction of the elevation difference from every cell to its
// lowest 8-neighbor, computed from a snapshot taken at the start of the
// iteration (no intra-iteration read-after-write).
type Erode struct {
	iterations int
	strength   float64
}

// NewErode creates an Erode.
// Returns ErrOpParam for iterations < 0 or strength outside [0,1].
// Zero iterations or zero strength make the operation an identity.
func NewErode(iterations int, strength float64) (*Erode, error) {
	if iterations < 0 {
		return nil, opErrorf(KindErode, "iterations %d", ErrOpParam, iterations)
	}
	if math.IsNaN(strength) || strength < 0 || strength > 1 {
		return nil, opErrorf(KindErode, "strength %g outside [0,1]", ErrOpParam, strength)
	}

	return &Erode{iterations: iterations, strength: strength}, nil
}

// Kind returns KindErode.
func (o *Erode) Kind() Kind { return KindErode }

func (o *Erode) isOp() {}

// Apply runs the configured number of erosion iterations on a copy of
// the grid. Within an iteration every cell finds its steepest strictly
// lower neighbor in the fixed N,NE,E,SE,S,SW,W,NW scan order (the first
// neighbor of maximal drop wins ties) and transfers strength × drop to
// it; local minima are untouched that pass. Transfers accumulate into
// the next-iteration buffer sequentially, since several cells may
// target the same downhill neighbor. Requires a scalar grid.
// Complexity: O(iterations×W×H×8) time, O(W×H) memory.
func (o *Erode) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindErode, g); err != nil {
		return nil, err
	}

	w, h := g.Width(), g.Height()
	snap, _ := g.Values() // kind checked above
	cur := make([]float64, w*h)
	copy(cur, snap)

	if o.iterations == 0 || o.strength == 0 {
		return grid.FromValues(w, h, cur)
	}

	offsets := grid.NeighborOffsets8()
	next := make([]float64, w*h)

	for it := 0; it < o.iterations; it++ {
		copy(next, cur)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				v := cur[idx]

				// Steepest strictly lower neighbor; strict > keeps the
				// earliest scan position on equal drops.
				bestDrop := 0.0
				bestIdx := -1
				for _, d := range offsets {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					nIdx := ny*w + nx
					if drop := v - cur[nIdx]; drop > bestDrop {
						bestDrop = drop
						bestIdx = nIdx
					}
				}
				if bestIdx < 0 {
					continue // local minimum, unaffected this pass
				}

				moved := o.strength * bestDrop
				next[idx] -= moved
				next[bestIdx] += moved
			}
		}
		cur, next = next, cur
	}

	return grid.FromValues(w, h, cur)
}
