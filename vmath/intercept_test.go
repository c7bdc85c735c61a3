package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptVector(t *testing.T) {
	shot := TraceBetween(VecInt(0, 0), VecInt(10, 0))

	tests := []struct {
		name string
		v2   Trace
		v1   Trace
		want Fixed
	}{
		{"midpoint", shot, TraceBetween(VecInt(5, -5), VecInt(5, 5)), Half},
		{"quarter", TraceBetween(VecInt(0, 0), VecInt(8, 0)), TraceBetween(VecInt(2, -4), VecInt(2, 4)), Fourth},
		{"beyond end", shot, TraceBetween(VecInt(20, -5), VecInt(20, 5)), Two},
		{"at origin", shot, TraceBetween(VecInt(0, -5), VecInt(0, 5)), Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterceptVector(tt.v2, tt.v1))
		})
	}
}

func TestInterceptParallel(t *testing.T) {
	shot := TraceBetween(VecInt(0, 0), VecInt(10, 0))
	wall := TraceBetween(VecInt(0, 5), VecInt(10, 5))
	crossing := TraceBetween(VecInt(0, -5), VecInt(0, 5))

	// both report a zero fraction
	assert.Equal(t, Zero, InterceptVector(shot, wall))
	assert.Equal(t, Zero, InterceptVector(shot, crossing))

	// only the parallelism check tells them apart
	assert.True(t, Parallel(shot, wall))
	assert.False(t, Parallel(shot, crossing))

	_, ok := Intercept(shot, wall)
	assert.False(t, ok)

	frac, ok := Intercept(shot, crossing)
	require.True(t, ok)
	assert.Equal(t, Zero, frac)
}

func TestInterceptPoint(t *testing.T) {
	shot := TraceBetween(VecInt(0, 0), VecInt(10, 0))
	wall := TraceBetween(VecInt(5, -5), VecInt(5, 5))

	frac, ok := Intercept(shot, wall)
	require.True(t, ok)
	assert.Equal(t, VecInt(5, 0), shot.At(frac))
	assert.Equal(t, VecInt(10, 0), shot.End())
}

func TestTracePointOnSide(t *testing.T) {
	shot := TraceBetween(VecInt(0, 0), VecInt(10, 0))

	tests := []struct {
		name string
		p    Vec
		want Side
	}{
		{"right of shot", VecInt(5, -5), Front},
		{"left of shot", VecInt(5, 5), Back},
		{"on the line", VecInt(5, 0), Front},
		{"behind origin on the line", VecInt(-5, 0), Front},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shot.PointOnSide(tt.p))
		})
	}
}

func TestTraceFromAngle(t *testing.T) {
	tr := TraceFromAngle(VecInt(1, 2), 0, FromInt(100))
	assert.Equal(t, VecInt(1, 2), tr.Origin)
	assert.Equal(t, Vec{X: 65535 * 100, Y: 25 * 100}, tr.Delta)

	north := TraceFromAngle(Vec{}, ANG90, FromInt(64))
	assert.Equal(t, Vec{X: -25 * 64, Y: 65535 * 64}, north.Delta)

	// the longest range keeps every table direction inside 32 bits
	for _, a := range []Angle{0, ANG90, ANG180, ANG270} {
		d := TraceFromAngle(Vec{}, a, FromInt(MaxTraceRange)).Delta
		assert.Equal(t, a.Unit().X.Sign(), d.X.Sign(), "angle %s", a)
		assert.Equal(t, a.Unit().Y.Sign(), d.Y.Sign(), "angle %s", a)
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "front", Front.String())
	assert.Equal(t, "back", Back.String())
}
