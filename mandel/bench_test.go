package mandel_test

import (
	"testing"

	"github.com/ahalverson/mandelgrid/mandel"
)

func BenchmarkIterate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mandel.Iterate(-0.75, 0.1, 1000)
	}
}

func BenchmarkRenderSequential(b *testing.B) {
	r := mandel.Renderer{View: testView}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(128, 128, 256)
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	r := mandel.Renderer{View: testView, Workers: 8}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(128, 128, 256)
	}
}
