// Package noise provides a deterministic coherent-noise sampler with
// fractal (multi-octave) summation, used to synthesize elevation and
// moisture fields.
//
// What:
//
//   - Source samples seeded gradient noise at arbitrary (x,y) points,
//     summing octaves octave layers with per-layer amplitude
//     persistence^i and frequency frequency·lacunarity^i, normalized by
//     the total amplitude so results stay in [-1,1].
//   - Two interchangeable backends: OpenSimplex (default) and Perlin.
//   - Sampling is a pure function of (seed, parameters, coordinate):
//     no internal mutable state, so a Source is safe for concurrent use
//     and reproducible across process restarts.
//
// Why:
//
//   - Heightmap synthesis: one Source per terrain layer (elevation,
//     moisture, temperature) with independent seeds.
//   - Determinism: the same seed and parameters always reproduce the
//     same map, which downstream tests and renders rely on.
//
// Options:
//
//   - WithFrequency, WithOctaves, WithPersistence, WithLacunarity,
//     WithBackend; see Default* constants for the zero-option values.
//
// Errors:
//
//   - ErrNoiseParam: a parameter is outside its valid range
//     (frequency ≤ 0, octaves < 1, persistence outside (0,1],
//     lacunarity < 1, unknown backend).
//
// Complexity: Sample is O(octaves) time, O(1) memory.
package noise
