package terraconf

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/noise"
	"github.com/katalvlaran/terragrid/ops"
	"github.com/katalvlaran/terragrid/pipeline"
)

// Validate checks the semantic invariants the YAML decoder cannot:
// positive dimensions, known operation types, noise parameter ranges,
// strictly ascending classify bands, resolvable layer references, and
// no combine steps inside layers. Errors carry the document path of
// the offending entry. Complexity: O(total operations).
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return confErrorf("dimensions", ErrConfig, "%dx%d must be positive", c.Width, c.Height)
	}

	for _, name := range c.layerNames() {
		if name == "" {
			return confErrorf("layers", ErrConfig, "empty layer name")
		}
		for i, oc := range c.Layers[name].Operations {
			path := fmt.Sprintf("layers[%s].operations[%d]", name, i)
			if oc.Type == TypeCombine {
				return confErrorf(path, ErrConfig, "combine is not allowed inside a layer")
			}
			if _, err := c.buildOp(path, oc, nil, true); err != nil {
				return err
			}
		}
	}

	for i, oc := range c.Operations {
		path := fmt.Sprintf("operations[%d]", i)
		if _, err := c.buildOp(path, oc, nil, true); err != nil {
			return err
		}
	}

	return nil
}

// Build validates the document, generates every named layer grid, and
// assembles the main pipeline in declaration order.
// Complexity: dominated by the layer pipeline runs.
func (c *Config) Build() (*pipeline.Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	layerGrids, err := c.buildLayers()
	if err != nil {
		return nil, err
	}

	initial, err := grid.New(c.Width, c.Height, c.Fill)
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(initial)
	if err != nil {
		return nil, err
	}
	for i, oc := range c.Operations {
		op, err := c.buildOp(fmt.Sprintf("operations[%d]", i), oc, layerGrids, false)
		if err != nil {
			return nil, err
		}
		p.Add(op)
	}

	return p, nil
}

// layerNames returns the layer names in sorted order so layer builds
// and validation reports are deterministic regardless of map order.
func (c *Config) layerNames() []string {
	names := make([]string, 0, len(c.Layers))
	for name := range c.Layers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// buildLayers runs every named layer chain on a fresh grid of the
// configured dimensions and returns the finished operand grids.
func (c *Config) buildLayers() (map[string]*grid.Grid, error) {
	if len(c.Layers) == 0 {
		return nil, nil
	}

	out := make(map[string]*grid.Grid, len(c.Layers))
	for _, name := range c.layerNames() {
		initial, err := grid.New(c.Width, c.Height, c.Fill)
		if err != nil {
			return nil, err
		}
		p, err := pipeline.New(initial)
		if err != nil {
			return nil, err
		}
		for i, oc := range c.Layers[name].Operations {
			op, err := c.buildOp(fmt.Sprintf("layers[%s].operations[%d]", name, i), oc, nil, false)
			if err != nil {
				return nil, err
			}
			p.Add(op)
		}
		g, err := p.Apply()
		if err != nil {
			return nil, fmt.Errorf("terraconf: layer %s: %w", name, err)
		}
		out[name] = g
	}

	return out, nil
}

// buildOp constructs one operation from its document entry. In dry
// mode (Validate) the combine operand grid is not resolved — only the
// layer reference and parameters are checked — and the returned Op may
// be nil. Constructor errors keep their sentinels (ops.ErrOpParam,
// noise.ErrNoiseParam) and gain the document path as context.
func (c *Config) buildOp(path string, oc OpConfig, layers map[string]*grid.Grid, dry bool) (ops.Op, error) {
	wrap := func(op ops.Op, err error) (ops.Op, error) {
		if err != nil {
			return nil, fmt.Errorf("terraconf: %s: %w", path, err)
		}
		return op, nil
	}

	switch oc.Type {
	case TypeNoiseFill:
		if oc.Noise == nil {
			return nil, confErrorf(path, ErrConfig, "noise_fill requires a noise block")
		}
		src, err := c.buildNoiseSource(path, oc.Noise)
		if err != nil {
			return nil, err
		}
		lo, hi := 0.0, 1.0
		if oc.OutputMin != nil {
			lo = *oc.OutputMin
		}
		if oc.OutputMax != nil {
			hi = *oc.OutputMax
		}
		op, err := ops.NewNoiseFillRange(src, lo, hi)

		return wrap(op, err)

	case TypeSmooth:
		op, err := ops.NewSmooth(oc.Radius)

		return wrap(op, err)

	case TypeNormalize:
		lo, hi := 0.0, 1.0
		if oc.Min != nil {
			lo = *oc.Min
		}
		if oc.Max != nil {
			hi = *oc.Max
		}
		op, err := ops.NewNormalize(lo, hi)

		return wrap(op, err)

	case TypeClassify:
		bands := make([]ops.Band, len(oc.Bands))
		for i, b := range oc.Bands {
			bands[i] = ops.Band{UpperBound: b.UpperBound, Label: grid.Label(b.Label)}
		}
		op, err := ops.NewClassify(bands)

		return wrap(op, err)

	case TypeCombine:
		if oc.Layer == "" {
			return nil, confErrorf(path, ErrConfig, "combine requires a layer reference")
		}
		if _, ok := c.Layers[oc.Layer]; !ok {
			return nil, confErrorf(path, ErrUnknownLayer, "%q", oc.Layer)
		}
		switch oc.Mode {
		case ModeAdd, ModeMax, ModeMin:
			if oc.Weight != nil {
				return nil, confErrorf(path, ErrConfig, "weight is only valid with %s", ModeWeightedAverage)
			}
		case ModeWeightedAverage:
			if oc.Weight == nil {
				return nil, confErrorf(path, ErrConfig, "%s requires a weight", ModeWeightedAverage)
			}
		default:
			return nil, confErrorf(path, ErrConfig, "unknown combine mode %q", oc.Mode)
		}
		if dry {
			return nil, nil
		}
		other := layers[oc.Layer]
		if oc.Mode == ModeWeightedAverage {
			op, err := ops.NewWeightedCombine(other, *oc.Weight)

			return wrap(op, err)
		}
		var mode ops.CombineMode
		switch oc.Mode {
		case ModeAdd:
			mode = ops.CombineAdd
		case ModeMax:
			mode = ops.CombineMax
		case ModeMin:
			mode = ops.CombineMin
		}
		op, err := ops.NewCombine(mode, other)

		return wrap(op, err)

	case TypeErode:
		op, err := ops.NewErode(oc.Iterations, oc.Strength)

		return wrap(op, err)

	default:
		return nil, confErrorf(path, ErrUnknownOp, "%q", oc.Type)
	}
}

// buildNoiseSource turns a noise block into a seeded Source. Omitted
// fields (zero values) fall back to the noise package defaults;
// non-finite values (YAML .nan/.inf) fail with ErrConfig and explicit
// out-of-range values surface noise.ErrNoiseParam.
func (c *Config) buildNoiseSource(path string, nc *NoiseConfig) (*noise.Source, error) {
	// The noise option constructors treat non-finite input as a
	// programmer fault; document values must be rejected here instead.
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"frequency", nc.Frequency},
		{"persistence", nc.Persistence},
		{"lacunarity", nc.Lacunarity},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, confErrorf(path, ErrConfig, "non-finite noise %s %v", f.name, f.value)
		}
	}

	var opts []noise.Option
	if nc.Frequency != 0 {
		opts = append(opts, noise.WithFrequency(nc.Frequency))
	}
	if nc.Octaves != 0 {
		opts = append(opts, noise.WithOctaves(nc.Octaves))
	}
	if nc.Persistence != 0 {
		opts = append(opts, noise.WithPersistence(nc.Persistence))
	}
	if nc.Lacunarity != 0 {
		opts = append(opts, noise.WithLacunarity(nc.Lacunarity))
	}
	switch nc.Backend {
	case "", "simplex":
		opts = append(opts, noise.WithBackend(noise.Simplex))
	case "perlin":
		opts = append(opts, noise.WithBackend(noise.Perlin))
	default:
		return nil, confErrorf(path, ErrConfig, "unknown noise backend %q", nc.Backend)
	}

	src, err := noise.New(nc.Seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("terraconf: %s: %w", path, err)
	}

	return src, nil
}
