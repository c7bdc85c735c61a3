package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiansWrap(t *testing.T) {
	assert.InDelta(t, 0.5, float64(NewRadians(0.5)), 1e-12)
	assert.InDelta(t, 2*math.Pi-0.5, float64(NewRadians(-0.5)), 1e-12)
	assert.InDelta(t, 1, float64(NewRadians(1+4*math.Pi)), 1e-9)

	for _, r := range []float64{-1e-17, -1e-300, -math.SmallestNonzeroFloat64, 2 * math.Pi} {
		got := float64(NewRadians(r))
		assert.GreaterOrEqual(t, got, 0.0, "r=%g", r)
		assert.Less(t, got, 2*math.Pi, "r=%g", r)
	}

	sum := NewRadians(3*math.Pi/2).Add(NewRadians(math.Pi))
	assert.InDelta(t, math.Pi/2, float64(sum), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, float64(NewRadians(0).Sub(NewRadians(math.Pi/2))), 1e-12)
}

func TestRadiansFromVector(t *testing.T) {
	assert.InDelta(t, math.Pi/2, float64(RadiansFromVector(0, 3)), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, float64(RadiansFromVector(0, -3)), 1e-12)
	assert.InDelta(t, 90.0, RadiansFromVector(0, 1).Degrees(), 1e-9)

	x, y := NewRadians(math.Pi).Unit()
	assert.InDelta(t, -1, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, 1, NewRadians(math.Pi/2).Sin(), 1e-12)
	assert.InDelta(t, 1, NewRadians(0).Cos(), 1e-12)
}

func TestRadiansRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/2, float64(ANG90.Radians()), 1e-9)
	for _, a := range []Angle{0, ANG45, ANG90, ANG180, ANG270} {
		back := a.Radians().Angle()
		// float conversion may land one unit low
		assert.LessOrEqual(t, uint32(a-back), uint32(1), "angle %#x", uint32(a))
	}
	assert.Equal(t, uint32(ANG90>>AngleToFineShift), ANG90.Fine())
	assert.Equal(t, uint32(FineAngles-1), ANGMax.Fine())
}
