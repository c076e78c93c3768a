package export

import (
	"errors"
	"fmt"
)

// Sentinel errors for palette construction and rendering.
// Callers branch on semantics with errors.Is.
var (
	// ErrBadGradient indicates a color stop list that could not be
	// parsed into a gradient.
	ErrBadGradient = errors.New("export: invalid color gradient")
	// ErrNoGradient indicates a labeled cell whose terrain type has no
	// gradient in the palette.
	ErrNoGradient = errors.New("export: no gradient for label")
	// ErrShapeMismatch indicates label and height grids of different
	// dimensions passed to ImageShaded.
	ErrShapeMismatch = errors.New("export: label and height grids must share dimensions")
)

// exportErrorf wraps a sentinel with the gradient or label it concerns:
// "<name>: <detail>: <err>".
func exportErrorf(name string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), err)
}
