package noise

import "math"

// Option mutates internal construction parameters. Options are applied
// in order with last-writer-wins semantics; range validation happens in
// New, which reports ErrNoiseParam. Constructors panic only on
// non-finite input (programmer error).
type Option func(*params)

// params is the resolved construction state. Unexported so a Source's
// configuration cannot be mutated after New.
type params struct {
	frequency   float64
	octaves     int
	persistence float64
	lacunarity  float64
	backend     Backend
}

// defaultParams returns the documented defaults (single source of truth).
func defaultParams() params {
	return params{
		frequency:   DefaultFrequency,
		octaves:     DefaultOctaves,
		persistence: DefaultPersistence,
		lacunarity:  DefaultLacunarity,
		backend:     DefaultBackend,
	}
}

// WithFrequency sets the base spatial frequency of octave 0.
// New rejects f ≤ 0 with ErrNoiseParam; panics on NaN/±Inf.
func WithFrequency(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(panicFrequencyNonFinite)
	}

	return func(p *params) { p.frequency = f }
}

// WithOctaves sets the number of fractal layers summed per sample.
// New rejects n < 1 with ErrNoiseParam.
func WithOctaves(n int) Option {
	return func(p *params) { p.octaves = n }
}

// WithPersistence sets the per-octave amplitude falloff.
// New rejects values outside (0,1] with ErrNoiseParam; panics on NaN/±Inf.
func WithPersistence(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		panic(panicPersistenceNonFinite)
	}

	return func(o *params) { o.persistence = p }
}

// WithLacunarity sets the per-octave frequency multiplier.
// New rejects l < 1 with ErrNoiseParam; panics on NaN/±Inf.
func WithLacunarity(l float64) Option {
	if math.IsNaN(l) || math.IsInf(l, 0) {
		panic(panicLacunarityNonFinite)
	}

	return func(p *params) { p.lacunarity = l }
}

// WithBackend selects the base gradient-noise function.
// New rejects unknown backends with ErrNoiseParam.
func WithBackend(b Backend) Option {
	return func(p *params) { p.backend = b }
}
