package poly_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algebraics/poly"
)

var sinkP poly.Poly

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("deg=%d", n), func(b *testing.B) {
			p, _ := poly.New(1, 1).Pow(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkP = p.Mul(p)
			}
		})
	}
}

func BenchmarkMod(b *testing.B) {
	b.ReportAllocs()
	p, _ := poly.New(1, 0, -3).Pow(16)
	q := p.Derivative()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkP, _ = p.Mod(q)
	}
}
