package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/fixedcore/bsp"
	"github.com/lixenwraith/fixedcore/vmath"
)

var iterations = flag.Int("n", 10_000_000, "iterations per operation")

func main() {
	flag.Parse()

	fmt.Printf("fixedcore Benchmark (%d iterations)\n", *iterations)
	fmt.Println("══════════════════════════════════════════════════════════════")
	fmt.Printf("%-28s %14s %14s %10s\n", "Operation", "Q16.16", "float64", "Ratio")
	fmt.Println("──────────────────────────────────────────────────────────────")

	benchMul()
	benchDiv()
	benchSinCos()
	benchToAngle()
	benchLength()
	benchPointOnSide()
	benchInterceptVector()

	fmt.Println("══════════════════════════════════════════════════════════════")
}

func benchMul() {
	a, b := vmath.FromFloat(123.456), vmath.FromFloat(-0.789)
	aF, bF := 123.456, -0.789
	n := *iterations

	start := time.Now()
	var rQ vmath.Fixed
	for i := 0; i < n; i++ {
		rQ = a.Mul(b + vmath.Fixed(i&0xff))
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF float64
	for i := 0; i < n; i++ {
		rF = aF * (bF + float64(i&0xff)/65536)
	}
	floatTime := time.Since(start)

	printResult("Mul", q16Time, floatTime)
	_, _ = rQ, rF
}

func benchDiv() {
	a, b := vmath.FromFloat(123.456), vmath.FromFloat(7.89)
	aF, bF := 123.456, 7.89
	n := *iterations

	start := time.Now()
	var rQ vmath.Fixed
	for i := 0; i < n; i++ {
		rQ = a.Div(b + vmath.Fixed(i&0xff))
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF float64
	for i := 0; i < n; i++ {
		rF = aF / (bF + float64(i&0xff)/65536)
	}
	floatTime := time.Since(start)

	printResult("Div (saturating)", q16Time, floatTime)
	_, _ = rQ, rF
}

func benchSinCos() {
	n := *iterations

	start := time.Now()
	var sQ, cQ vmath.Fixed
	for i := 0; i < n; i++ {
		sQ, cQ = vmath.Angle(uint32(i) * 7919).SinCos()
	}
	q16Time := time.Since(start)

	start = time.Now()
	var sF, cF float64
	for i := 0; i < n; i++ {
		sF, cF = math.Sincos(float64(uint32(i)*7919) * (2 * math.Pi / (1 << 32)))
	}
	floatTime := time.Since(start)

	printResult("SinCos (table)", q16Time, floatTime)
	_, _, _, _ = sQ, cQ, sF, cF
}

func benchToAngle() {
	v := vmath.Vec{X: vmath.FromFloat(123.456), Y: vmath.FromFloat(-78.9)}
	xF, yF := 123.456, -78.9
	n := *iterations

	start := time.Now()
	var rQ vmath.Angle
	for i := 0; i < n; i++ {
		v.Y += vmath.Fixed(i & 1)
		rQ = v.ToAngle()
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF float64
	for i := 0; i < n; i++ {
		yF += float64(i&1) / 65536
		rF = math.Atan2(yF, xF)
	}
	floatTime := time.Since(start)

	printResult("ToAngle vs Atan2", q16Time, floatTime)
	_, _ = rQ, rF
}

func benchLength() {
	v := vmath.Vec{X: vmath.FromFloat(123.456), Y: vmath.FromFloat(78.9)}
	xF, yF := 123.456, 78.9
	n := *iterations

	start := time.Now()
	var rQ vmath.Fixed
	for i := 0; i < n; i++ {
		v.X += vmath.Fixed(i & 1)
		rQ = v.Length()
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF float64
	for i := 0; i < n; i++ {
		xF += float64(i&1) / 65536
		rF = math.Hypot(xF, yF)
	}
	floatTime := time.Since(start)

	printResult("Length vs Hypot", q16Time, floatTime)
	_, _ = rQ, rF
}

func benchPointOnSide() {
	node := bsp.Node{Origin: vmath.VecInt(16, -8), Delta: vmath.VecInt(-96, 32)}
	oxF, oyF, dxF, dyF := 16.0, -8.0, -96.0, 32.0
	n := *iterations

	start := time.Now()
	var rQ vmath.Side
	for i := 0; i < n; i++ {
		rQ = node.PointOnSide(vmath.VecInt(int32(i&0x7f)-64, int32((i>>7)&0x7f)-64))
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF bool
	for i := 0; i < n; i++ {
		px, py := float64(i&0x7f)-64, float64((i>>7)&0x7f)-64
		rF = dxF*(py-oyF)-dyF*(px-oxF) > 0
	}
	floatTime := time.Since(start)

	printResult("PointOnSide", q16Time, floatTime)
	_, _ = rQ, rF
}

func benchInterceptVector() {
	wall := vmath.TraceBetween(vmath.VecInt(40, -100), vmath.VecInt(40, 100))
	n := *iterations

	start := time.Now()
	var rQ vmath.Fixed
	for i := 0; i < n; i++ {
		shot := vmath.TraceFromAngle(vmath.Vec{}, vmath.Angle(uint32(i&0xfff)<<19), vmath.FromInt(512))
		rQ = vmath.InterceptVector(shot, wall)
	}
	q16Time := time.Since(start)

	start = time.Now()
	var rF float64
	for i := 0; i < n; i++ {
		// wall is x=40, so the fraction along the shot is 40/dx
		_, c := math.Sincos(float64(i&0xfff) * (2 * math.Pi / 8192))
		if sdx := c * 512; sdx != 0 {
			rF = 40 / sdx
		}
	}
	floatTime := time.Since(start)

	printResult("TraceFromAngle+Intercept", q16Time, floatTime)
	_, _ = rQ, rF
}

func printResult(name string, q16Time, floatTime time.Duration) {
	ratio := float64(q16Time) / float64(floatTime)
	fmt.Printf("%-28s %14s %14s %9.2fx\n", name, q16Time, floatTime, ratio)
}
