package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthApprox(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		want Fixed
	}{
		{"3-4", VecInt(3, 4), FromFloat(5.5)},
		{"4-3", VecInt(4, 3), FromFloat(5.5)},
		{"axis", VecInt(-10, 0), FromInt(10)},
		{"diagonal", VecInt(1, 1), FromFloat(1.5)},
		{"negative", VecInt(-4, -3), FromFloat(5.5)},
		// odd raw minor axis keeps its rounding bit: dx + dy - (min >> 1)
		{"odd raw", Vec{X: 3, Y: 1}, Fixed(4)},
		{"zero", Vec{}, Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Length())
		})
	}
}

func TestLengthExact(t *testing.T) {
	assert.Equal(t, FromInt(5), VecInt(3, 4).LengthExact())
	assert.Equal(t, FromInt(13), VecInt(-5, 12).LengthExact())
	// approximation overestimates the diagonal, exact does not
	assert.Greater(t, VecInt(100, 100).Length(), VecInt(100, 100).LengthExact())
}

func TestDistance(t *testing.T) {
	a, b := VecInt(1, 1), VecInt(4, 5)
	assert.Equal(t, FromFloat(5.5), a.Distance(b))
	assert.Equal(t, FromInt(5), a.DistanceExact(b))
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestVecAlgebra(t *testing.T) {
	a := VecInt(2, -4)
	assert.Equal(t, VecInt(1, -2), a.Scale(Half))
	assert.Equal(t, VecInt(1, -2), a.Div(Two))
	assert.Equal(t, Vec{X: MaxFixed, Y: MinFixed}, a.Div(Zero))
	assert.Equal(t, VecInt(5, -1), a.Add(VecInt(3, 3)))
	assert.Equal(t, VecInt(-1, -7), a.Sub(VecInt(3, 3)))
	assert.Equal(t, VecInt(-2, 4), a.Neg())
	assert.Equal(t, FromInt(11), VecInt(1, 2).Dot(VecInt(3, 4)))
	assert.Equal(t, One, VecInt(1, 0).Cross(VecInt(0, 1)))
	assert.Equal(t, -One, VecInt(0, 1).Cross(VecInt(1, 0)))
}

func TestVecInPlace(t *testing.T) {
	pos := VecInt(10, 10)
	pos.AddIn(VecInt(1, -2))
	assert.Equal(t, VecInt(11, 8), pos)
	pos.ScaleIn(Two)
	assert.Equal(t, VecInt(22, 16), pos)
}

func TestVecFormatting(t *testing.T) {
	assert.Equal(t, "(1, -2.5)", Vec{X: One, Y: FromFloat(-2.5)}.String())
	x, y := VecInt(3, -1).Float()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, -1.0, y)
}
