package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fixedSamples = []Fixed{
	Zero, One, -One, Half, -Half, Fourth, 1, -1,
	FromInt(7), FromInt(-300), FromInt(16000), Fixed(12345678),
	MaxFixed, MinFixed + 1,
}

func TestMulIdentity(t *testing.T) {
	for _, a := range append(fixedSamples, MinFixed) {
		assert.Equal(t, a, a.Mul(One), "a=%d", int32(a))
		assert.Equal(t, a, One.Mul(a), "a=%d", int32(a))
	}
}

func TestMulTruncation(t *testing.T) {
	tests := []struct {
		name string
		a, b Fixed
		want Fixed
	}{
		{"two times one", Two, One, Two},
		{"half squared", Half, Half, Fourth},
		{"negative floors", Fixed(-1), Half, Fixed(-1)},
		{"positive floors", Fixed(1), Half, Zero},
		{"overflow wraps", MaxFixed, Two, Fixed(-2)},
		{"mixed sign", FromInt(-3), FromInt(4), FromInt(-12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Mul(tt.b))
		})
	}
}

func TestDivIdentity(t *testing.T) {
	for _, a := range fixedSamples {
		if a == 0 {
			continue
		}
		assert.Equal(t, One, a.Div(a), "a=%d", int32(a))
	}
}

func TestDivSaturation(t *testing.T) {
	tests := []struct {
		name string
		a, b Fixed
		want Fixed
	}{
		{"max by half", MaxFixed, Half, MaxFixed},
		{"max by negative half", MaxFixed, -Half, MinFixed},
		{"negative max by half", -MaxFixed, Half, MinFixed},
		{"negative max by negative half", -MaxFixed, -Half, MaxFixed},
		{"threshold saturates", Two, Fixed(8), MaxFixed},
		{"just under threshold", Two, Fixed(9), Fixed(954437176)},
		{"positive by zero", One, Zero, MaxFixed},
		{"negative by zero", -One, Zero, MinFixed},
		{"zero by zero", Zero, Zero, MaxFixed},
		{"min by zero", MinFixed, Zero, MinFixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Div(tt.b))
		})
	}
}

func TestDivTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, Fixed(21845), One.Div(FromInt(3)))
	assert.Equal(t, Fixed(-21845), (-One).Div(FromInt(3)))
	assert.Equal(t, Half, One.Div(Two))
	assert.Equal(t, FromInt(-4), FromInt(8).Div(-Two))
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want Fixed
	}{
		{1.5, Fixed(98304)},
		{-0.5, -Half},
		{1.9 / FracUnit, Fixed(1)},
		{-1.9 / FracUnit, Fixed(-1)},
		{1e12, MaxFixed},
		{-1e12, MinFixed},
		{math.NaN(), Zero},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromFloat(tt.in), "in=%v", tt.in)
	}
}

func TestIntConversions(t *testing.T) {
	v := FromFloat(-1.5)
	assert.Equal(t, int32(-1), v.Int())
	assert.Equal(t, int32(-2), v.Floor())
	assert.Equal(t, int32(3), FromFloat(3.75).Int())
	assert.Equal(t, FromInt(-12), FromInt16(-12))
	assert.InDelta(t, 3.75, FromFloat(3.75).Float(), 1e-9)
}

func TestByte(t *testing.T) {
	assert.Equal(t, uint8(127), MaxFixed.Byte())
	assert.Equal(t, uint8(1), FromInt(256).Byte())
	assert.Equal(t, uint8(1), FromInt(-256).Byte())
	assert.Equal(t, uint8(0), FromInt(255).Byte())
}

func TestShiftsPreserveSign(t *testing.T) {
	assert.Equal(t, FromInt(-2), FromInt(-8).Shr(2))
	assert.Equal(t, Fixed(-1), Fixed(-1).Shr(8))
	assert.Equal(t, FromInt(12), FromInt(3).Shl(2))
}

func TestAddSubWrap(t *testing.T) {
	assert.Equal(t, MinFixed, MaxFixed.Add(1))
	assert.Equal(t, MaxFixed, MinFixed.Sub(1))
	assert.Equal(t, MinFixed, MinFixed.Neg())
	assert.Equal(t, MinFixed, MinFixed.Abs())
	assert.Equal(t, One, (-One).Abs())
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, -1, One.Cmp(Two))
	assert.Equal(t, 1, Two.Cmp(One))
	assert.Equal(t, 0, Half.Cmp(Half))
	assert.Equal(t, -One, MinOf(-One, One))
	assert.Equal(t, One, MaxOf(-One, One))
	assert.Equal(t, -One, FromInt(-9).Sign())
	assert.Equal(t, Zero, Zero.Sign())
	assert.True(t, FromInt(-9).IsNeg())
}

func TestFixedString(t *testing.T) {
	assert.Equal(t, "1.5", FromFloat(1.5).String())
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "-3", FromInt(-3).String())
}
