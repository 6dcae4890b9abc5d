package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/gharib85/isinglab/lattice"
)

// BenchmarkAt measures wrapped reads across a 256×256 grid, the access
// pattern of one kernel sweep (four neighbors per site).
// Complexity: O(1) per call.
func BenchmarkAt(b *testing.B) {
	const n = 256
	l, err := lattice.New(n, n, rand.New(rand.NewSource(7)))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sink lattice.Spin
	for i := 0; i < b.N; i++ {
		y, x := i%n, i%n
		sink += l.At(y-1, x) + l.At(y+1, x) + l.At(y, x-1) + l.At(y, x+1)
	}
	_ = sink
}

// BenchmarkClone measures deep-copying a 256×256 grid.
// Complexity: O(rows×cols).
func BenchmarkClone(b *testing.B) {
	const n = 256
	l, err := lattice.New(n, n, rand.New(rand.NewSource(7)))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Clone()
	}
}
