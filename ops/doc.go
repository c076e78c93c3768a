// Package ops defines the closed set of terrain-grid transformations
// applied by a pipeline: NoiseFill, Smooth, Normalize, Classify,
// Combine, and Erode.
//
// What:
//
//   - Every operation implements Op: it consumes a *grid.Grid and
//     produces a fresh grid of identical dimensions, or fails without
//     touching the input. The set is sealed (unexported marker method);
//     dispatch on Op.Kind is exhaustive.
//   - NoiseFill synthesizes elevations from a noise.Source, mapping
//     samples into a configurable output range (default [0,1]).
//   - Smooth box-averages each cell over its Chebyshev neighborhood,
//     reading only the pre-smooth snapshot (no sequential bias).
//   - Normalize linearly rescales all cells into a target range from
//     the observed global min/max; a flat grid becomes all target-min.
//   - Classify bands scalar values into discrete terrain labels via a
//     strictly ascending threshold table, converting the grid from
//     scalar to labeled kind.
//   - Combine merges the working grid with a second same-sized grid
//     elementwise (Add, Max, Min, WeightedAverage).
//   - Erode runs snapshot-based steepest-descent elevation transfer
//     over the 8-neighborhood for a number of iterations.
//
// Determinism:
//
//   - All kernels use fixed loop orders or write disjoint output cells,
//     so results are bit-identical across runs and across the internal
//     row-parallel NoiseFill.
//
// Errors:
//
//   - ErrOpParam: invalid operation parameters at construction.
//   - ErrKindMismatch: a scalar-only operation applied to a labeled
//     grid (or labeled access where undefined).
//   - ErrDimensionMismatch: Combine's second grid differs in size.
package ops
