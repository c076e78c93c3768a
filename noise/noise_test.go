package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/noise"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_InvalidParams verifies every out-of-range parameter is
// rejected with ErrNoiseParam.
func TestNew_InvalidParams(t *testing.T) {
	cases := []struct {
		name string
		opts []noise.Option
	}{
		{"ZeroFrequency", []noise.Option{noise.WithFrequency(0)}},
		{"NegativeFrequency", []noise.Option{noise.WithFrequency(-0.5)}},
		{"ZeroOctaves", []noise.Option{noise.WithOctaves(0)}},
		{"NegativeOctaves", []noise.Option{noise.WithOctaves(-2)}},
		{"ZeroPersistence", []noise.Option{noise.WithPersistence(0)}},
		{"PersistenceAboveOne", []noise.Option{noise.WithPersistence(1.5)}},
		{"LacunarityBelowOne", []noise.Option{noise.WithLacunarity(0.5)}},
		{"UnknownBackend", []noise.Option{noise.WithBackend(noise.Backend(99))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := noise.New(42, tc.opts...)
			assert.ErrorIs(t, err, noise.ErrNoiseParam)
		})
	}
}

// TestWith_PanicsOnNonFinite verifies option constructors treat NaN/Inf
// as programmer error.
func TestWith_PanicsOnNonFinite(t *testing.T) {
	nan := func() float64 { var z float64; return z / z }()
	assert.Panics(t, func() { noise.WithFrequency(nan) })
	assert.Panics(t, func() { noise.WithPersistence(nan) })
	assert.Panics(t, func() { noise.WithLacunarity(nan) })
}

// TestNew_Defaults verifies the documented zero-option configuration.
func TestNew_Defaults(t *testing.T) {
	s, err := noise.New(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Seed())
	assert.Equal(t, noise.DefaultOctaves, s.Octaves())
	assert.Equal(t, noise.Simplex, s.Backend())
}

//----------------------------------------------------------------------------//
// Sampling
//----------------------------------------------------------------------------//

// TestSample_Deterministic verifies that the same seed and coordinate
// always yield bit-identical values, across repeated calls and across
// independently constructed Sources.
func TestSample_Deterministic(t *testing.T) {
	for _, backend := range []noise.Backend{noise.Simplex, noise.Perlin} {
		t.Run(backend.String(), func(t *testing.T) {
			a, err := noise.New(42, noise.WithBackend(backend))
			require.NoError(t, err)
			b, err := noise.New(42, noise.WithBackend(backend))
			require.NoError(t, err)

			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					fx, fy := float64(x), float64(y)
					v := a.Sample(fx, fy)
					assert.Equal(t, v, a.Sample(fx, fy), "repeat call at (%d,%d)", x, y)
					assert.Equal(t, v, b.Sample(fx, fy), "fresh source at (%d,%d)", x, y)
				}
			}
		})
	}
}

// TestSample_SeedsDiffer verifies different seeds produce different
// fields (not a strict guarantee per point, so compare whole windows).
func TestSample_SeedsDiffer(t *testing.T) {
	a, err := noise.New(1, noise.WithFrequency(0.1))
	require.NoError(t, err)
	b, err := noise.New(2, noise.WithFrequency(0.1))
	require.NoError(t, err)

	same := true
	for i := 0; i < 64 && same; i++ {
		x, y := float64(i%8), float64(i/8)
		same = a.Sample(x, y) == b.Sample(x, y)
	}
	assert.False(t, same, "seeds 1 and 2 produced an identical 8×8 window")
}

// TestSample_Range verifies samples stay in [-1,1] under heavy octave
// stacking on both backends.
func TestSample_Range(t *testing.T) {
	for _, backend := range []noise.Backend{noise.Simplex, noise.Perlin} {
		s, err := noise.New(99,
			noise.WithBackend(backend),
			noise.WithFrequency(0.3),
			noise.WithOctaves(8),
			noise.WithPersistence(1.0),
			noise.WithLacunarity(2.5),
		)
		require.NoError(t, err)

		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				v := s.Sample(float64(x), float64(y))
				assert.GreaterOrEqual(t, v, -1.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

// TestSample_OctavesChangeField verifies octave count is not a dead
// parameter: more octaves must alter the sampled field.
func TestSample_OctavesChangeField(t *testing.T) {
	one, err := noise.New(42, noise.WithFrequency(0.1), noise.WithOctaves(1))
	require.NoError(t, err)
	four, err := noise.New(42, noise.WithFrequency(0.1), noise.WithOctaves(4))
	require.NoError(t, err)

	same := true
	for i := 0; i < 64 && same; i++ {
		x, y := float64(i%8), float64(i/8)
		same = one.Sample(x, y) == four.Sample(x, y)
	}
	assert.False(t, same)
}
