// Package noise defines the backend selector, documented defaults, and
// sentinel errors for the noise subpackage of
// github.com/katalvlaran/terragrid.
package noise

import (
	"errors"
	"fmt"
)

// ErrNoiseParam indicates a noise parameter outside its valid range.
// Callers branch with errors.Is; the wrapped message names the field.
var ErrNoiseParam = errors.New("noise: invalid parameter")

// noiseErrorf wraps ErrNoiseParam with the offending field and value.
func noiseErrorf(field string, value interface{}) error {
	return fmt.Errorf("noise: New: %s=%v: %w", field, value, ErrNoiseParam)
}

// Backend selects the base gradient-noise function under the fractal sum.
type Backend int

const (
	// Simplex uses OpenSimplex gradient noise (ojrac/opensimplex-go).
	// Continuous across integer cell boundaries, no visible seams.
	Simplex Backend = iota
	// Perlin uses classic Perlin gradient noise (aquilax/go-perlin).
	Perlin
)

// String implements fmt.Stringer for diagnostics.
func (b Backend) String() string {
	switch b {
	case Simplex:
		return "simplex"
	case Perlin:
		return "perlin"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// DEFAULTS — single source of truth for zero-option behavior.
const (
	// DefaultFrequency is the base spatial frequency of octave 0.
	DefaultFrequency = 0.01

	// DefaultOctaves is the number of fractal layers summed per sample.
	DefaultOctaves = 4

	// DefaultPersistence is the per-octave amplitude falloff: octave i
	// contributes persistence^i of the base amplitude.
	DefaultPersistence = 0.5

	// DefaultLacunarity is the per-octave frequency multiplier: octave i
	// samples at frequency·lacunarity^i.
	DefaultLacunarity = 2.0

	// DefaultBackend is the base noise function used when no
	// WithBackend option is given.
	DefaultBackend = Simplex
)

// Internal panic messages for option constructors (programmer error).
const (
	panicFrequencyNonFinite   = "noise: WithFrequency: frequency must be finite"
	panicPersistenceNonFinite = "noise: WithPersistence: persistence must be finite"
	panicLacunarityNonFinite  = "noise: WithLacunarity: lacunarity must be finite"
)
