package collections_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ahalverson/mandelgrid/collections"
)

// makeDoubles creates a Collection[float64] of size n for benchmarks.
func makeDoubles(n int) *collections.Collection[float64] {
	return collections.Generate(n, func(int) float64 { return rand.Float64() })
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		collections.Generate(10_000, func(j int) float64 { return float64(j) })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeDoubles(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(x float64) float64 { return x * 2 })
	}
}

func BenchmarkZipMul(b *testing.B) {
	u := makeDoubles(10_000)
	v := makeDoubles(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Mul(u, v)
	}
}

func BenchmarkReduceSum(b *testing.B) {
	c := makeDoubles(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Sum(c)
	}
}

func BenchmarkDot(b *testing.B) {
	u := makeDoubles(10_000)
	v := makeDoubles(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Dot(u, v)
	}
}
