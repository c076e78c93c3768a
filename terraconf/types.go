// Package terraconf defines the document structures and sentinel
// errors for the terraconf subpackage of
// github.com/katalvlaran/terragrid.
package terraconf

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration loading and validation.
// Callers branch on semantics with errors.Is.
var (
	// ErrConfig indicates a semantically invalid configuration
	// (dimensions, parameter ranges, malformed band tables, parse
	// failures). Fully recoverable: fix the document and rebuild.
	ErrConfig = errors.New("terraconf: invalid configuration")
	// ErrUnknownOp indicates an unrecognized operation type string.
	ErrUnknownOp = errors.New("terraconf: unknown operation type")
	// ErrUnknownLayer indicates a combine step referencing a layer name
	// that is not defined in the document.
	ErrUnknownLayer = errors.New("terraconf: unknown layer")
)

// confErrorf wraps a sentinel with the offending document path.
func confErrorf(path string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("terraconf: %s: %s: %w", path, fmt.Sprintf(format, args...), err)
}

// Recognized operation type strings.
const (
	TypeNoiseFill = "noise_fill"
	TypeSmooth    = "smooth"
	TypeNormalize = "normalize"
	TypeClassify  = "classify"
	TypeCombine   = "combine"
	TypeErode     = "erode"
)

// Recognized combine mode strings.
const (
	ModeAdd             = "add"
	ModeMax             = "max"
	ModeMin             = "min"
	ModeWeightedAverage = "weighted_average"
)

// Config is the root document: grid dimensions, the main operation
// chain, and optional named layers consumed by combine steps.
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Fill   float64 `yaml:"fill"`

	// Layers maps a name to an independent operation chain run on a
	// fresh grid of the same dimensions. Layers cannot themselves
	// contain combine steps (no nesting, no reference cycles).
	Layers map[string]Layer `yaml:"layers"`

	Operations []OpConfig `yaml:"operations"`
}

// Layer is one named auxiliary chain, e.g. a moisture map.
type Layer struct {
	Operations []OpConfig `yaml:"operations"`
}

// OpConfig is one step of a chain. Type selects the variant; the other
// fields are type-specific and ignored elsewhere. Optional numeric
// fields are pointers so zero can be distinguished from absent.
type OpConfig struct {
	Type string `yaml:"type"`

	// noise_fill
	Noise     *NoiseConfig `yaml:"noise"`
	OutputMin *float64     `yaml:"output_min"`
	OutputMax *float64     `yaml:"output_max"`

	// smooth
	Radius int `yaml:"radius"`

	// normalize
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	// classify
	Bands []BandConfig `yaml:"bands"`

	// combine
	Mode   string   `yaml:"mode"`
	Layer  string   `yaml:"layer"`
	Weight *float64 `yaml:"weight"`

	// erode
	Iterations int     `yaml:"iterations"`
	Strength   float64 `yaml:"strength"`
}

// NoiseConfig parameterizes one noise source. Omitted fields fall back
// to the noise package defaults; seed 0 is a valid seed.
type NoiseConfig struct {
	Seed        int64   `yaml:"seed"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Backend     string  `yaml:"backend"` // "simplex" (default) or "perlin"
}

// BandConfig is one classify threshold entry.
type BandConfig struct {
	UpperBound float64 `yaml:"upper_bound"`
	Label      string  `yaml:"label"`
}
