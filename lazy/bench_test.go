package lazy_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/lazy"
)

func BenchmarkFirstRealization(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := lazy.Iterate(0, func(n int) int { return n + 1 }).Take(1_000)
		s.Force()
	}
}

func BenchmarkCachedRealization(b *testing.B) {
	s := lazy.Iterate(0, func(n int) int { return n + 1 }).Take(1_000)
	s.Force() // pay for realization once, outside the loop
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Force()
	}
}

func BenchmarkMapFilterPipeline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := lazy.Iterate(0, func(n int) int { return n + 1 }).
			Map(func(n int) int { return n * n }).
			Filter(func(n int) bool { return n%3 == 0 }).
			Take(100)
		s.Force()
	}
}

func BenchmarkFromSliceForce(b *testing.B) {
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lazy.FromSlice(items).Force()
	}
}
