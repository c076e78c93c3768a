package pipeline

import (
	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/ops"
)

// Pipeline is an ordered, append-only sequence of operations plus the
// working grid it exclusively owns. Zero value is not usable; construct
// with New.
type Pipeline struct {
	initial *grid.Grid
	steps   []ops.Op
	result  *grid.Grid

	sealed bool  // set when Apply first runs; Add is rejected after
	addErr error // first Add violation, surfaced by Apply
}

// New creates a Pipeline that starts from initial.
// Returns grid.ErrNilGrid for a nil grid.
// Complexity: O(1); the initial grid is adopted, not copied.
func New(initial *grid.Grid) (*Pipeline, error) {
	if initial == nil {
		return nil, grid.ErrNilGrid
	}

	return &Pipeline{initial: initial}, nil
}

// Add appends op to the sequence and returns the pipeline so calls
// chain left-to-right in configuration order:
//
//	p.Add(fill).Add(smooth).Add(classify)
//
// A nil op or an Add after execution has started is recorded and
// surfaced by the next Apply (chaining keeps the signature error-free).
// Complexity: O(1) amortized.
func (p *Pipeline) Add(op ops.Op) *Pipeline {
	switch {
	case p.sealed:
		if p.addErr == nil {
			p.addErr = ErrSealed
		}
	case op == nil:
		if p.addErr == nil {
			p.addErr = ErrNilOp
		}
	default:
		p.steps = append(p.steps, op)
	}

	return p
}

// Len returns the number of appended operations.
func (p *Pipeline) Len() int { return len(p.steps) }

// Result returns the final grid of the last successful Apply, or nil.
func (p *Pipeline) Result() *grid.Grid { return p.result }

// Apply executes every operation in insertion order against the
// working grid.
// Stage 1 (Validate): surface any deferred Add violation; seal the
// sequence.
// Stage 2 (Execute): per step, fail-fast on grid-kind and Combine
// dimension compatibility, run the operation, and verify it preserved
// dimensions. The first failure aborts with a *StepError carrying the
// step index and kind; the grid state from before that operation is
// retained (operations are atomic and never mutate their input).
// Stage 3 (Finalize): store and return the final grid.
// Re-running Apply restarts from the initial grid and is deterministic.
// Complexity: Σ over steps of each operation's cost.
func (p *Pipeline) Apply() (*grid.Grid, error) {
	if p.addErr != nil {
		return nil, p.addErr
	}
	p.sealed = true

	cur := p.initial
	for i, op := range p.steps {
		if err := p.precheck(i, op, cur); err != nil {
			return nil, err
		}

		out, err := op.Apply(cur)
		if err != nil {
			return nil, stepErrorf(i, op.Kind(), err)
		}
		if out.Width() != cur.Width() || out.Height() != cur.Height() {
			return nil, stepErrorf(i, op.Kind(), ErrDimensionChanged)
		}
		cur = out
	}
	p.result = cur

	return cur, nil
}

// precheck validates op against the current working grid before
// invoking it: every variant in the closed set consumes a scalar grid
// (Classify is the only scalar→labeled transition and nothing reopens
// scalars afterwards), and Combine's borrowed grid must match the
// working dimensions. Complexity: O(1).
func (p *Pipeline) precheck(index int, op ops.Op, cur *grid.Grid) error {
	if cur.Kind() != grid.Scalar {
		return stepErrorf(index, op.Kind(), ops.ErrKindMismatch)
	}
	if c, ok := op.(*ops.Combine); ok && !cur.SameDimensions(c.Other()) {
		return stepErrorf(index, op.Kind(), ops.ErrDimensionMismatch)
	}

	return nil
}
