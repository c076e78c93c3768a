package ops

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/noise"
)

// NoiseFill replaces every scalar cell with a fractal-noise sample
// mapped from [-1,1] into [OutputMin, OutputMax].
type NoiseFill struct {
	src                  *noise.Source
	outputMin, outputMax float64
}

// NewNoiseFill creates a NoiseFill writing into the default [0,1]
// output range. Returns ErrOpParam for a nil source.
func NewNoiseFill(src *noise.Source) (*NoiseFill, error) {
	return NewNoiseFillRange(src, 0, 1)
}

// NewNoiseFillRange creates a NoiseFill with a configured output range.
// Stage 1 (Validate): src non-nil, lo < hi, both finite.
// Returns ErrOpParam on violation.
func NewNoiseFillRange(src *noise.Source, lo, hi float64) (*NoiseFill, error) {
	if src == nil {
		return nil, opErrorf(KindNoiseFill, "nil noise source", ErrOpParam)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return nil, opErrorf(KindNoiseFill, "output range [%g,%g]", ErrOpParam, lo, hi)
	}

	return &NoiseFill{src: src, outputMin: lo, outputMax: hi}, nil
}

// Kind returns KindNoiseFill.
func (o *NoiseFill) Kind() Kind { return KindNoiseFill }

func (o *NoiseFill) isOp() {}

// Apply samples the source at every cell coordinate and writes
// (sample+1)/2 scaled into the output range. Rows are computed
// concurrently; each goroutine writes a disjoint row range and the
// sampler is stateless, so the result is identical to the sequential
// order. Requires a scalar grid.
// Complexity: O(W×H×octaves) time, O(W×H) memory.
func (o *NoiseFill) Apply(g *grid.Grid) (*grid.Grid, error) {
	if err := requireScalar(KindNoiseFill, g); err != nil {
		return nil, err
	}

	w, h := g.Width(), g.Height()
	vals := make([]float64, w*h)
	span := o.outputMax - o.outputMin

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < h; y++ {
		base := y * w
		fy := float64(y)
		eg.Go(func() error {
			for x := 0; x < w; x++ {
				unit := (o.src.Sample(float64(x), fy) + 1) / 2
				vals[base+x] = o.outputMin + unit*span
			}
			return nil
		})
	}
	// Row workers cannot fail; Wait only synchronizes completion.
	_ = eg.Wait()

	return grid.FromValues(w, h, vals)
}
