package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Known entries of the legacy tables. The pole region of the tangent table and
// the tail of tanToAngle are where a double precision rebuild drifts
func TestFineTangentEntries(t *testing.T) {
	want := []int32{
		-170910304, -56965752, -34178904, -24413316, -18988036, -15535599, -13145455, -11392683,
		-10052327, -8994149, -8137527, -7429880, -6835455, -6329090, -5892567, -5512368,
	}
	assert.Equal(t, want, fineTangent[:len(want)])

	// the table is an exact mirror about its centre
	for i := 0; i < FineAngles/4; i++ {
		if fineTangent[FineAngles/4-1-i] != -fineTangent[FineAngles/4+i] {
			t.Fatalf("fineTangent[%d] = %d, mirror %d", FineAngles/4-1-i, fineTangent[FineAngles/4-1-i], fineTangent[FineAngles/4+i])
		}
	}
	assert.Equal(t, int32(170910304), fineTangent[FineAngles/2-1])
	assert.Equal(t, int32(25), fineTangent[FineAngles/4])
	assert.Equal(t, int32(65586), fineTangent[FineAngles/4+FineAngles/8])
}

func TestFineTangentThroughAngle(t *testing.T) {
	// just past straight down, the first table row
	for i, want := range []Fixed{-170910304, -56965752, -34178904, -24413316} {
		a := ANG270 + Angle(i<<AngleToFineShift)
		assert.Equal(t, want, a.Tan(), "fine %d", i)
	}
}

func TestFineSineEntries(t *testing.T) {
	assert.Equal(t, []int32{25, 75, 125, 175, 226, 276, 326, 376}, fineSine[:8])

	// the peak sits across the quarter turn
	assert.Equal(t, []int32{
		65534, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
		65535, 65535, 65535, 65535, 65535, 65535, 65535, 65534,
	}, fineSine[FineAngles/4-8:FineAngles/4+8])

	assert.Equal(t, int32(22433), fineSine[455])
	assert.Equal(t, int32(-22433), fineSine[4551])
	// single precision sampling breaks exact antisymmetry in places
	assert.Equal(t, int32(2587), fineSine[51])
	assert.Equal(t, int32(-2588), fineSine[51+FineAngles/2])
}

func TestTanToAngleEntries(t *testing.T) {
	assert.Equal(t, []uint32{0, 333772, 667544, 1001315, 1335086, 1668857, 2002626, 2336395}, tanToAngle[:8])
	assert.Equal(t, uint32(316933408), tanToAngle[SlopeRange/2])
	assert.Equal(t, []uint32{
		535533216, 535700704, 535868128, 536035456, 536202720, 536369888, 536536992, 536704000, 536870912,
	}, tanToAngle[SlopeRange-8:])
	assert.Equal(t, uint32(ANG45), tanToAngle[SlopeRange])

	for i := 1; i <= SlopeRange; i++ {
		if tanToAngle[i] <= tanToAngle[i-1] {
			t.Fatalf("tanToAngle not increasing at %d", i)
		}
	}
}
