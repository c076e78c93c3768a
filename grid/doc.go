// Package grid provides the fixed-size 2D cell container that every
// terrain operation consumes and produces.
//
// What:
//
//   - Grid stores width×height cells in a single flat row-major buffer
//     (index = y·width + x), either scalar elevations (float64) or
//     discrete terrain labels after classification.
//   - Bounds-checked access (At/Set, LabelAt/SetLabel) and row-major
//     traversal (ForEach/ForEachLabel).
//   - Neighbors enumerates the in-bounds Chebyshev disk around a cell;
//     border cells simply get fewer neighbors (clamp, never wrap).
//
// Why:
//
//   - Heightmap synthesis: the working buffer for noise fill, smoothing,
//     normalization and erosion passes.
//   - Terrain classification: the same container carries discrete labels
//     once elevations are banded into terrain types.
//
// Complexity:
//
//   - At/Set/LabelAt/SetLabel/InBounds: O(1).
//   - ForEach/Clone/Equal: O(W×H).
//   - Neighbors(radius r): O(r²).
//
// Errors:
//
//   - ErrInvalidDimension: width or height not positive.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrGridKind: scalar access on a labeled grid or vice versa.
package grid
