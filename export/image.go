package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/mazznoer/colorgrad"

	"github.com/katalvlaran/terragrid/grid"
)

// Image renders g into an RGBA image of identical dimensions.
// Scalar grids are mapped through p.Height across the observed value
// range; a flat grid renders entirely at the gradient's low end.
// Labeled grids use each label's Terrain gradient sampled at its
// midpoint; use ImageShaded for relief-shaded label renders.
// Stage 1 (Validate): reject a nil grid.
// Stage 2 (Render): walk cells in row-major order, set pixels.
// Stage 3 (Finalize): return the image or the first missing-label error.
// Complexity: O(W×H).
func Image(g *grid.Grid, p Palette) (*image.RGBA, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))

	if g.Kind() == grid.Scalar {
		lo, hi, err := g.MinMax()
		if err != nil {
			return nil, err
		}
		span := hi - lo
		g.ForEach(func(x, y int, v float64) {
			t := 0.0
			if span > 0 {
				t = (v - lo) / span
			}
			img.SetRGBA(x, y, pixel(p.Height, t))
		})

		return img, nil
	}

	var missing error
	g.ForEachLabel(func(x, y int, l grid.Label) {
		grad, ok := p.Terrain[l]
		if !ok {
			if missing == nil {
				missing = exportErrorf(string(l), ErrNoGradient, "at (%d,%d)", x, y)
			}

			return
		}
		img.SetRGBA(x, y, pixel(grad, 0.5))
	})
	if missing != nil {
		return nil, missing
	}

	return img, nil
}

// ImageShaded renders a classified grid with relief shading: each cell
// takes its label's gradient sampled at the cell's height, normalized
// across the height grid's observed range. labels must be a labeled
// grid and heights a scalar grid of the same dimensions, typically the
// pre-classification elevation map.
// Complexity: O(W×H).
func ImageShaded(labels, heights *grid.Grid, p Palette) (*image.RGBA, error) {
	if labels == nil || heights == nil {
		return nil, grid.ErrNilGrid
	}
	if labels.Kind() != grid.Labeled || heights.Kind() != grid.Scalar {
		return nil, fmt.Errorf("export: ImageShaded(%s,%s): %w",
			labels.Kind(), heights.Kind(), grid.ErrGridKind)
	}
	if !labels.SameDimensions(heights) {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w",
			labels.Width(), labels.Height(), heights.Width(), heights.Height(), ErrShapeMismatch)
	}

	lo, hi, err := heights.MinMax()
	if err != nil {
		return nil, err
	}
	span := hi - lo

	img := image.NewRGBA(image.Rect(0, 0, labels.Width(), labels.Height()))
	var missing error
	labels.ForEachLabel(func(x, y int, l grid.Label) {
		grad, ok := p.Terrain[l]
		if !ok {
			if missing == nil {
				missing = exportErrorf(string(l), ErrNoGradient, "at (%d,%d)", x, y)
			}

			return
		}
		v, _ := heights.At(x, y)
		t := 0.0
		if span > 0 {
			t = (v - lo) / span
		}
		img.SetRGBA(x, y, pixel(grad, t))
	})
	if missing != nil {
		return nil, missing
	}

	return img, nil
}

// pixel samples grad at t and converts to the image/color representation.
func pixel(grad colorgrad.Gradient, t float64) color.RGBA {
	r, g, b, a := grad.At(t).RGBA255()

	return color.RGBA{R: r, G: g, B: b, A: a}
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}

	return nil
}

// SavePNG writes img to path as a PNG file, creating or truncating it.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err = WritePNG(f, img); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
