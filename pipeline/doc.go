// Package pipeline orchestrates an ordered sequence of terrain
// operations over a working grid.
//
// What:
//
//   - Pipeline owns the working grid for the whole run. Operations are
//     appended with the chainable Add and executed strictly in
//     insertion order by Apply; each consumes the complete output of
//     its predecessor.
//   - Before invoking an operation, the pipeline fail-fasts on grid
//     kind (scalar-only operations on a labeled grid) and, for
//     Combine, on the second grid's dimensions.
//   - Apply stops at the first failure and reports the offending step
//     position and kind through *StepError; operations are atomic, so
//     the working grid is never left partially transformed.
//
// Why:
//
//   - Heightmap generation is naturally a chain: noise fill →
//     smoothing → normalization → classification → export. Keeping the
//     chain declarative makes steps easy to rearrange and experiment
//     with.
//
// Determinism:
//
//   - Re-running Apply on the same pipeline restarts from the initial
//     grid and reproduces the identical result bit for bit.
//
// Errors:
//
//   - ErrNilOp: a nil operation was appended.
//   - ErrSealed: Add was called after execution started.
//   - ErrDimensionChanged: an operation violated the fixed-dimensions
//     invariant (programming fault in the operation).
//   - *StepError: wraps any failure with the step index and kind;
//     errors.Is reaches the underlying sentinel, errors.As the step.
package pipeline
