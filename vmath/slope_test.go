package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAngleUnitCircle(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want Angle
	}{
		{"east", 1, 0, 0},
		{"north", 0, 1, ANG90 - 1},
		{"west", -1, 0, ANG180 - 1},
		{"south", 0, -1, ANG270},
		{"north east", 1, 1, ANG45 - 1},
		{"north west", -1, 1, ANG45 + ANG90},
		{"south east", 1, -1, ANG270 + ANG45},
		{"south west", -1, -1, ANG180 + ANG45 - 1},
		{"far east", 1000, 0, 0},
		{"far west", -1000, 0, ANG180 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VecInt(tt.x, tt.y).ToAngle())
		})
	}
}

func TestToAngleZeroVector(t *testing.T) {
	assert.Equal(t, Angle(0), Vec{}.ToAngle())
}

func TestToAngleOctantZero(t *testing.T) {
	// slope 0.5 hits tanToAngle[1024] directly
	assert.Equal(t, Angle(316933408), VecInt(2, 1).ToAngle())
}

func TestToAngleTracksTable(t *testing.T) {
	// Round trip through the table direction stays within a fraction of a degree
	radius := FromInt(100)
	for i := uint32(0); i < FineAngles; i++ {
		a := Angle(i << AngleToFineShift)
		got := a.Unit().Scale(radius).ToAngle()
		diff := int32(got - a)
		if diff < 0 {
			diff = -diff
		}
		if diff > int32(ANG1/8) {
			t.Fatalf("fine %d: ToAngle %d drifted %d from %d", i, got, diff, a)
		}
	}
}

func TestSlopeDiv(t *testing.T) {
	tests := []struct {
		name     string
		num, den uint32
		want     uint32
	}{
		{"tiny denominator", 100, 511, SlopeRange},
		{"zero numerator", 0, 512, 0},
		{"equal", 512, 512, SlopeRange},
		{"half", 256, 512, 1024},
		{"clamped", 1000, 512, SlopeRange},
		{"fixed half", 1 << 16, 2 << 16, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlopeDiv(tt.num, tt.den))
		})
	}
}

func TestPointToAngle(t *testing.T) {
	from := VecInt(10, 10)
	assert.Equal(t, Angle(0), PointToAngle(from, VecInt(20, 10)))
	assert.Equal(t, ANG270, PointToAngle(from, VecInt(10, -5)))
	assert.Equal(t, ANG45-1, PointToAngle(from, VecInt(30, 30)))
}
