package hull_test

import (
	"testing"

	"github.com/malone-c/sparse-maq/core"
	"github.com/malone-c/sparse-maq/hull"
)

// synthUnit builds one unit of n options where roughly half end up
// dominated: costs rise linearly while rewards alternate between strong
// and weak increments.
func synthUnit(n int) []core.Option {
	opts := make([]core.Option, 0, n)
	reward := 0.0
	for k := 0; k < n; k++ {
		if k%2 == 0 {
			reward += 3
		} else {
			reward += 0.5
		}
		opts = append(opts, core.Option{ID: uint32(k), Reward: reward, Cost: float64(k + 1)})
	}

	return opts
}

// benchmarkPruneUnit reprunes a fresh copy of the same unit each
// iteration; the copy is excluded from the timing.
func benchmarkPruneUnit(b *testing.B, n int) {
	master := synthUnit(n)
	scratch := make([]core.Option, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(scratch, master)
		b.StartTimer()

		if got := hull.PruneUnit(scratch); len(got) == 0 {
			b.Fatal("synthetic unit must keep at least one option")
		}
	}
}

// BenchmarkPruneUnit_Small benchmarks a 10-option unit, the common sparse
// case.
func BenchmarkPruneUnit_Small(b *testing.B) {
	benchmarkPruneUnit(b, 10)
}

// BenchmarkPruneUnit_Medium benchmarks a 1,000-option unit.
func BenchmarkPruneUnit_Medium(b *testing.B) {
	benchmarkPruneUnit(b, 1_000)
}

// BenchmarkPruneUnit_Large benchmarks a 100,000-option unit, past the
// practical per-unit maximum.
func BenchmarkPruneUnit_Large(b *testing.B) {
	benchmarkPruneUnit(b, 100_000)
}
