// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/terragrid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
// Callers branch on semantics with errors.Is.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("grid: width and height must be > 0")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	// Surfacing it from an operation is a programming fault, not a
	// recoverable condition.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrGridKind indicates scalar access on a labeled grid or labeled
	// access on a scalar grid.
	ErrGridKind = errors.New("grid: cell kind mismatch")
	// ErrNilGrid indicates a nil *Grid where a grid is required.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf wraps a sentinel with method context: "Grid.<Method>(x,y): <err>".
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}

// Kind reports what a Grid's cells hold: continuous scalar values or
// discrete terrain labels. A Grid is single-kinded at any point in a
// pipeline; classification is the only scalar→labeled transition.
type Kind int

const (
	// Scalar cells hold a float64 elevation or intermediate value.
	Scalar Kind = iota
	// Labeled cells hold a discrete terrain-type Label.
	Labeled
)

// String implements fmt.Stringer for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Labeled:
		return "labeled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label is a discrete terrain type assigned by classification,
// e.g. "water", "plains", "mountain".
type Label string

// Coord is a single (X,Y) cell position, used by Neighbors.
type Coord struct {
	X, Y int
}
