package export

import (
	"github.com/mazznoer/colorgrad"

	"github.com/katalvlaran/terragrid/grid"
)

// Palette holds the gradients used to turn grid cells into pixels.
// Height renders scalar grids; Terrain holds one gradient per terrain
// label for classified grids. Every gradient spans the domain [0,1].
type Palette struct {
	Height  colorgrad.Gradient
	Terrain map[grid.Label]colorgrad.Gradient
}

// NewPalette builds a Palette from HTML color stop lists (hex or named
// CSS colors). Each list needs at least one stop; stops are spread
// evenly across [0,1]. Unparseable stops wrap ErrBadGradient with the
// offending gradient named.
func NewPalette(height []string, terrain map[grid.Label][]string) (Palette, error) {
	hg, err := buildGradient("height", height)
	if err != nil {
		return Palette{}, err
	}

	p := Palette{Height: hg, Terrain: make(map[grid.Label]colorgrad.Gradient, len(terrain))}
	for l, stops := range terrain {
		g, err := buildGradient(string(l), stops)
		if err != nil {
			return Palette{}, err
		}
		p.Terrain[l] = g
	}

	return p, nil
}

// DefaultPalette returns the stock water/plains/mountain scheme with a
// grayscale height gradient. The stop lists are fixed, so construction
// cannot fail.
func DefaultPalette() Palette {
	p, err := NewPalette(
		[]string{"#000000", "#ffffff"},
		map[grid.Label][]string{
			"water":    {"#0a3d66", "#2e86c1"},
			"plains":   {"#58a65c", "#a9c97e"},
			"mountain": {"#8d8d8d", "#f2f2f2"},
		},
	)
	if err != nil {
		panic(err)
	}

	return p
}

// buildGradient compiles one stop list into a [0,1] gradient.
func buildGradient(name string, stops []string) (colorgrad.Gradient, error) {
	if len(stops) == 0 {
		return colorgrad.Gradient{}, exportErrorf(name, ErrBadGradient, "no color stops")
	}
	g, err := colorgrad.NewGradient().
		HtmlColors(stops...).
		Domain(0, 1).
		Build()
	if err != nil {
		return colorgrad.Gradient{}, exportErrorf(name, ErrBadGradient, "%v", err)
	}

	return g, nil
}
