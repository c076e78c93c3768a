// Package ops defines operation kinds, the sealed Op interface, and
// sentinel errors for the ops subpackage of
// github.com/katalvlaran/terragrid.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terragrid/grid"
)

// Sentinel errors for operation construction and execution.
// Callers branch on semantics with errors.Is.
var (
	// ErrOpParam indicates an invalid operation parameter at
	// construction time (radius < 0, malformed threshold table,
	// strength outside [0,1], nil noise source, ...).
	ErrOpParam = errors.New("ops: invalid operation parameter")
	// ErrKindMismatch indicates an operation applied to a grid kind it
	// does not support (e.g. Smooth on a labeled grid).
	ErrKindMismatch = errors.New("ops: operation does not support grid kind")
	// ErrDimensionMismatch indicates Combine's second grid differs in
	// width or height from the working grid.
	ErrDimensionMismatch = errors.New("ops: grid dimensions differ")
)

// opErrorf wraps a sentinel with operation context: "<Kind>: <msg>: <err>".
func opErrorf(kind Kind, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), err)
}

// Kind identifies an operation variant. The set is closed; pipeline
// diagnostics report it alongside the failing step index.
type Kind int

const (
	KindNoiseFill Kind = iota
	KindSmooth
	KindNormalize
	KindClassify
	KindCombine
	KindErode
)

// String implements fmt.Stringer for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case KindNoiseFill:
		return "NoiseFill"
	case KindSmooth:
		return "Smooth"
	case KindNormalize:
		return "Normalize"
	case KindClassify:
		return "Classify"
	case KindCombine:
		return "Combine"
	case KindErode:
		return "Erode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one grid transformation. Apply never mutates its input: it
// returns a fresh grid of identical dimensions, or an error leaving the
// input untouched (operations are atomic from the pipeline's view).
//
// The interface is sealed: only the variants in this package satisfy
// it, so a switch over Kind covers every case.
type Op interface {
	// Kind identifies the variant for dispatch and diagnostics.
	Kind() Kind
	// Apply transforms g into a new grid with the same width and height.
	Apply(g *grid.Grid) (*grid.Grid, error)

	isOp()
}

// requireScalar rejects nil or labeled grids for scalar-only operations.
func requireScalar(kind Kind, g *grid.Grid) error {
	if g == nil {
		return opErrorf(kind, "working grid", grid.ErrNilGrid)
	}
	if g.Kind() != grid.Scalar {
		return opErrorf(kind, "got %s grid", ErrKindMismatch, g.Kind())
	}

	return nil
}
