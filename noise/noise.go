package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// perlinBaseOctaves keeps the Perlin backend a single-layer base
// function; fractal summation is done here, not inside the library.
const perlinBaseOctaves = 1

// Source is an immutable, deterministic fractal-noise sampler. All
// per-call state is derived from the seed and parameters at
// construction, so Sample is referentially transparent and safe for
// concurrent use.
type Source struct {
	seed        int64
	frequency   float64
	octaves     int
	persistence float64
	lacunarity  float64
	backend     Backend

	// Precomputed per octave to avoid Pow in the sampling hot path.
	frequencies []float64 // frequency · lacunarity^i
	amplitudes  []float64 // persistence^i
	ampSum      float64   // Σ amplitudes, the normalization divisor

	eval func(x, y float64) float64 // seeded base gradient noise in [-1,1]
}

// New constructs a Source for the given seed.
// Stage 1 (Resolve): apply options over defaults, last-writer-wins.
// Stage 2 (Validate): range-check every parameter (ErrNoiseParam).
// Stage 3 (Prepare): precompute the per-octave frequency and amplitude
// tables and bind the seeded backend evaluator.
// Complexity: O(octaves) time and memory.
func New(seed int64, opts ...Option) (*Source, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	if p.frequency <= 0 {
		return nil, noiseErrorf("frequency", p.frequency)
	}
	if p.octaves < 1 {
		return nil, noiseErrorf("octaves", p.octaves)
	}
	if p.persistence <= 0 || p.persistence > 1 {
		return nil, noiseErrorf("persistence", p.persistence)
	}
	if p.lacunarity < 1 {
		return nil, noiseErrorf("lacunarity", p.lacunarity)
	}

	s := &Source{
		seed:        seed,
		frequency:   p.frequency,
		octaves:     p.octaves,
		persistence: p.persistence,
		lacunarity:  p.lacunarity,
		backend:     p.backend,
		frequencies: make([]float64, p.octaves),
		amplitudes:  make([]float64, p.octaves),
	}

	frequency, amplitude := p.frequency, 1.0
	for i := 0; i < p.octaves; i++ {
		s.frequencies[i] = frequency
		s.amplitudes[i] = amplitude
		s.ampSum += amplitude
		frequency *= p.lacunarity
		amplitude *= p.persistence
	}

	switch p.backend {
	case Simplex:
		s.eval = opensimplex.New(seed).Eval2
	case Perlin:
		pn := perlin.NewPerlin(2, 2, perlinBaseOctaves, seed)
		s.eval = pn.Noise2D
	default:
		return nil, noiseErrorf("backend", p.backend)
	}

	return s, nil
}

// Seed returns the seed the Source was constructed with.
func (s *Source) Seed() int64 { return s.seed }

// Octaves returns the number of fractal layers summed per sample.
func (s *Source) Octaves() int { return s.octaves }

// Backend returns the base gradient-noise function in use.
func (s *Source) Backend() Backend { return s.backend }

// Sample returns fractal-sum coherent noise at (x,y) in [-1,1]:
// Σ persistence^i · base(x·frequency·lacunarity^i, y·frequency·lacunarity^i),
// divided by the maximum possible amplitude sum.
// Complexity: O(octaves) time, O(1) memory.
func (s *Source) Sample(x, y float64) float64 {
	var sum float64
	for i := 0; i < s.octaves; i++ {
		f := s.frequencies[i]
		sum += s.amplitudes[i] * s.eval(x*f, y*f)
	}
	v := sum / s.ampSum

	// The backends stay within [-1,1]; clamp guards against rounding
	// at the amplitude-sum division.
	return math.Max(-1, math.Min(1, v))
}
