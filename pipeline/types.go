// Package pipeline defines sentinel errors and the positioned step
// error for the pipeline subpackage of
// github.com/katalvlaran/terragrid.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terragrid/ops"
)

// Sentinel errors for pipeline construction and execution.
// Callers branch on semantics with errors.Is.
var (
	// ErrNilOp indicates Add received a nil operation.
	ErrNilOp = errors.New("pipeline: nil operation")
	// ErrSealed indicates Add was called after Apply started executing;
	// the operation sequence is immutable from that point.
	ErrSealed = errors.New("pipeline: sequence is sealed after execution starts")
	// ErrDimensionChanged indicates an operation returned a grid whose
	// width or height differs from its input. Correct operations never
	// do this; it signals a programming fault, mirroring the
	// OutOfBounds policy in grid.
	ErrDimensionChanged = errors.New("pipeline: operation changed grid dimensions")
)

// StepError reports which step of the sequence failed and why. It
// wraps the underlying cause, so errors.Is sees sentinels like
// ops.ErrDimensionMismatch and errors.As recovers the position.
type StepError struct {
	// Index is the zero-based position in insertion order.
	Index int
	// Kind identifies the operation variant at that position.
	Kind ops.Kind
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface: "pipeline: step 2 (Combine): …".
func (e *StepError) Error() string {
	return fmt.Sprintf("pipeline: step %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *StepError) Unwrap() error {
	return e.Err
}

// stepErrorf wraps err with the failing step's position and kind.
func stepErrorf(index int, kind ops.Kind, err error) error {
	return &StepError{Index: index, Kind: kind, Err: err}
}
