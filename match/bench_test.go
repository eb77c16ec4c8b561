package match_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tda/match"
	"github.com/katalvlaran/tda/persistence"
)

// randomDiagram builds a reproducible diagram of n points with births in
// [0,10) and persistences in (0,5).
func randomDiagram(rng *rand.Rand, n int) persistence.Diagram {
	d := make(persistence.Diagram, n)
	for i := range d {
		birth := rng.Float64() * 10
		d[i] = persistence.Point{Birth: birth, Death: birth + rng.Float64()*5}
	}

	return d
}

// benchmarkPair runs fn on two fixed-seed random diagrams of n points each.
func benchmarkPair(b *testing.B, n int, fn func(a, c persistence.Diagram) error) {
	rng := rand.New(rand.NewSource(42)) // fixed seed for stable workloads
	da := randomDiagram(rng, n)
	dc := randomDiagram(rng, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err := fn(da, dc); err != nil {
			b.Fatalf("match failed: %v", err)
		}
	}
}

// BenchmarkBottleneck_50 benchmarks Bottleneck on 50-point diagrams.
func BenchmarkBottleneck_50(b *testing.B) {
	benchmarkPair(b, 50, func(a, c persistence.Diagram) error {
		_, _, err := match.Bottleneck(a, c, nil)
		return err
	})
}

// BenchmarkBottleneck_200 benchmarks Bottleneck on 200-point diagrams.
func BenchmarkBottleneck_200(b *testing.B) {
	benchmarkPair(b, 200, func(a, c persistence.Diagram) error {
		_, _, err := match.Bottleneck(a, c, nil)
		return err
	})
}

// BenchmarkWasserstein1_50 benchmarks Wasserstein-1 on 50-point diagrams.
func BenchmarkWasserstein1_50(b *testing.B) {
	benchmarkPair(b, 50, func(a, c persistence.Diagram) error {
		_, _, err := match.Wasserstein(a, c, 1, nil)
		return err
	})
}

// BenchmarkWasserstein2_200 benchmarks Wasserstein-2 on 200-point diagrams.
func BenchmarkWasserstein2_200(b *testing.B) {
	benchmarkPair(b, 200, func(a, c persistence.Diagram) error {
		_, _, err := match.Wasserstein(a, c, 2, nil)
		return err
	})
}
