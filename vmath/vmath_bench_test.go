package vmath

import (
	"math/rand"
	"testing"
)

const sampleCount = 10000

type benchPoint struct {
	v Vec
	s Fixed
}

var benchPoints []benchPoint

func init() {
	// Fixed seed keeps runs comparable
	rng := rand.New(rand.NewSource(1))
	benchPoints = make([]benchPoint, sampleCount)
	for i := range benchPoints {
		benchPoints[i] = benchPoint{
			v: Vec{X: Fixed(rng.Int31n(1<<26) - 1<<25), Y: Fixed(rng.Int31n(1<<26) - 1<<25)},
			s: Fixed(rng.Int31n(1<<20) + 1),
		}
	}
}

func BenchmarkMul(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		p := benchPoints[i%sampleCount]
		sink = p.v.X.Mul(p.s)
	}
	_ = sink
}

func BenchmarkDiv(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		p := benchPoints[i%sampleCount]
		sink = p.v.X.Div(p.s)
	}
	_ = sink
}

func BenchmarkToAngle(b *testing.B) {
	var sink Angle
	for i := 0; i < b.N; i++ {
		sink = benchPoints[i%sampleCount].v.ToAngle()
	}
	_ = sink
}

func BenchmarkLength(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		sink = benchPoints[i%sampleCount].v.Length()
	}
	_ = sink
}

func BenchmarkLengthExact(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		sink = benchPoints[i%sampleCount].v.LengthExact()
	}
	_ = sink
}

func BenchmarkSinCos(b *testing.B) {
	var s, c Fixed
	for i := 0; i < b.N; i++ {
		s, c = Angle(uint32(i) * 7919 << AngleToFineShift).SinCos()
	}
	_, _ = s, c
}

func BenchmarkInterceptVector(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		p := benchPoints[i%sampleCount]
		q := benchPoints[(i+1)%sampleCount]
		sink = InterceptVector(NewTrace(p.v, q.v), NewTrace(q.v, p.v.Neg()))
	}
	_ = sink
}
