package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleWraparound(t *testing.T) {
	half := ANG180
	assert.Equal(t, Angle(0), half+half)
	assert.Equal(t, Angle(0), ANG180.Add(ANG180))
	assert.Equal(t, ANG90, ANG270.Sub(ANG180))
	assert.Equal(t, ANG270, Angle(0).Sub(ANG90))
	assert.Equal(t, Angle(0), ANGMax.Add(1))
	assert.Equal(t, ANG270, ANG90.Neg())
}

func TestSinCosTable(t *testing.T) {
	tests := []struct {
		name     string
		a        Angle
		sin, cos Fixed
	}{
		{"zero", 0, 25, 65535},
		{"quarter", ANG90, 65535, -25},
		{"half", ANG180, -25, -65535},
		{"three quarters", ANG270, -65535, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sin, tt.a.Sin())
			assert.Equal(t, tt.cos, tt.a.Cos())
		})
	}
}

func TestSinCosConsistency(t *testing.T) {
	for i := uint32(0); i < FineAngles; i++ {
		a := Angle(i << AngleToFineShift)
		sin, cos := a.SinCos()
		if sin != a.Sin() || cos != a.Cos() {
			t.Fatalf("fine %d: SinCos (%d,%d) disagrees with Sin/Cos (%d,%d)", i, sin, cos, a.Sin(), a.Cos())
		}
		// the fifth quarter repeats the first to within one unit; so does the
		// half-turn mirror, since the table was sampled in single precision
		if d := cos - (a + ANG90).Sin(); d < -1 || d > 1 {
			t.Fatalf("fine %d: cos %d != sin(a+90) %d", i, cos, (a + ANG90).Sin())
		}
		if d := sin + (a + ANG180).Sin(); d < -1 || d > 1 {
			t.Fatalf("fine %d: sin %d not antisymmetric", i, sin)
		}
	}
}

func TestSinQuantisation(t *testing.T) {
	// every angle inside one fine step reads the same entry
	base := Angle(1234 << AngleToFineShift)
	step := Angle(1 << AngleToFineShift)
	assert.Equal(t, base.Sin(), (base + step - 1).Sin())
	assert.NotEqual(t, base.Sin(), (base + step).Sin())
}

func TestUnit(t *testing.T) {
	assert.Equal(t, Vec{X: 65535, Y: 25}, Angle(0).Unit())
	assert.Equal(t, Vec{X: -25, Y: 65535}, ANG90.Unit())
}

func TestTan(t *testing.T) {
	assert.Equal(t, Fixed(25), Angle(0).Tan())
	assert.Equal(t, Fixed(65586), ANG45.Tan())
	assert.Equal(t, Fixed(-65485), ANG45.Neg().Tan())

	for i := uint32(0); i < FineAngles; i += 7 {
		a := Angle(i << AngleToFineShift)
		assert.Equal(t, a.Tan(), (a + ANG180).Tan(), "fine %d", i)
	}
}

func TestCompactAngle(t *testing.T) {
	tests := []struct {
		deg  int16
		want Angle
	}{
		{0, 0},
		{45, ANG45},
		{90, ANG90},
		{100, ANG90},
		{270, ANG270},
		{-45, ANGMax - ANG45 + 1},
		{-90, ANG270},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AngleFromInt16(tt.deg), "deg=%d", tt.deg)
	}

	assert.Equal(t, int16(90), ANG90.Int16())
	assert.Equal(t, int16(90), (ANG90 + ANG1).Int16())
	assert.Equal(t, int16(315), (ANG270 + ANG45).Int16())
	for _, deg := range []int16{0, 45, 90, 135, 180, 225, 270, 315} {
		assert.Equal(t, deg, AngleFromInt16(deg).Int16())
	}
}

func TestAngleFixedDegrees(t *testing.T) {
	assert.Equal(t, FromInt(90), ANG90.Fixed())
	assert.Equal(t, FromInt(45), ANG45.Fixed())
	assert.Equal(t, FromInt(180), ANG180.Fixed())
	assert.Equal(t, Zero, Angle(0).Fixed())
}

func TestAngleFloatConversions(t *testing.T) {
	assert.Equal(t, 90.0, ANG90.Degrees())
	assert.InDelta(t, math.Pi, float64(ANG180.Radians()), 1e-9)
	assert.Equal(t, ANG90, FromDegrees(90))
	assert.Equal(t, ANG270, FromDegrees(-90))
	assert.Equal(t, Angle(0), FromDegrees(360))
	assert.Equal(t, "90.000°", ANG90.String())
}
