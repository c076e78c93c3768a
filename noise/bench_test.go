package noise_test

import (
	"testing"

	"github.com/katalvlaran/terragrid/noise"
)

// BenchmarkSample_Simplex measures fractal sampling cost on the default
// backend at 4 octaves. Complexity: O(octaves) per call.
func BenchmarkSample_Simplex(b *testing.B) {
	s, err := noise.New(42, noise.WithFrequency(0.01))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(float64(i%1024), float64(i/1024))
	}
}

// BenchmarkSample_Perlin measures the same workload on the Perlin backend.
func BenchmarkSample_Perlin(b *testing.B) {
	s, err := noise.New(42, noise.WithFrequency(0.01), noise.WithBackend(noise.Perlin))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(float64(i%1024), float64(i/1024))
	}
}
