package filtration_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tda/filtration"
)

// benchmarkBuild runs Build on a sinusoidal path of n samples.
func benchmarkBuild(b *testing.B, n int) {
	field := make([]float64, n)
	for i := range field {
		field[i] = math.Sin(float64(i) / 7) // predictable oscillating values
	}
	edges := filtration.PathEdges(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := filtration.Build(field, edges); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Path1k benchmarks a 1 000-sample path.
func BenchmarkBuild_Path1k(b *testing.B) { benchmarkBuild(b, 1_000) }

// BenchmarkBuild_Path100k benchmarks a 100 000-sample path.
func BenchmarkBuild_Path100k(b *testing.B) { benchmarkBuild(b, 100_000) }
