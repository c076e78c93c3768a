// Package terraconf turns a declarative YAML document into a runnable
// terrain pipeline.
//
// What:
//
//   - Config mirrors the document shape: grid dimensions, an ordered
//     operation list, and optional named layers. A layer is its own
//     operation list; Combine steps reference a layer by name and merge
//     its generated grid into the working grid (e.g. an elevation map
//     blended with an independently seeded moisture map).
//   - Load/LoadFile perform strict YAML decoding (unknown fields are
//     errors); Validate checks the semantic invariants the decoder
//     cannot (ascending classify bands, noise parameter ranges, known
//     operation types, referenced layers); Build constructs the
//     pipeline.
//
// Why:
//
//   - Generation chains are experiment-heavy: a config file lets steps
//     be reordered, re-seeded, and re-tuned without recompiling.
//
// Errors:
//
//   - ErrConfig: a document-level invariant is violated (dimensions,
//     missing blocks, unknown backend or mode, decode failures); the
//     message carries the offending path (e.g. "operations[2]: …").
//   - ErrUnknownOp / ErrUnknownLayer: unrecognized operation type or
//     dangling layer reference.
//   - Parameter-range violations keep their origin sentinels
//     (ops.ErrOpParam, noise.ErrNoiseParam) with the document path
//     added as context, so errors.Is works across the boundary.
//
// The core never reads files, flags, or environment variables; this
// package is the only boundary where documents enter the system.
package terraconf
