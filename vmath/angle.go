package vmath

import (
	"math"
	"strconv"
)

//go:generate go run ../cmd/gentables -o tables.go

// Angle is a binary angle: the full circle spans the whole uint32 range, so
// addition and subtraction wrap modulo 2^32 and every value is valid
type Angle uint32

const (
	ANG45  Angle = 0x20000000
	ANG90  Angle = 0x40000000
	ANG180 Angle = 0x80000000
	ANG270 Angle = 0xc0000000
	ANGMax Angle = 0xffffffff
	ANG1         = ANG45 / 45
	ANG5         = ANG1 * 5
)

// Fine table geometry: the top 13 bits of an angle select one of FineAngles entries
const (
	FineAngles       = 8192
	FineMask         = FineAngles - 1
	AngleToFineShift = 19
)

// --- Trigonometry ---

// Trig results are quantised to the table granularity; continuous math must not
// be substituted since simulation outcomes depend on the exact table values

// Fine returns the fine table index of the angle
func (a Angle) Fine() uint32 { return uint32(a) >> AngleToFineShift }

func (a Angle) Sin() Fixed { return Fixed(fineSine[a.Fine()]) }

// Cos reads the sine table a quarter turn ahead
func (a Angle) Cos() Fixed { return Fixed(fineSine[a.Fine()+FineAngles/4]) }

func (a Angle) SinCos() (sin, cos Fixed) {
	i := a.Fine()
	return Fixed(fineSine[i]), Fixed(fineSine[i+FineAngles/4])
}

// Tan has a period of half a turn; the table spans -90 to +90 degrees
func (a Angle) Tan() Fixed {
	return Fixed(fineTangent[((a+ANG90)>>AngleToFineShift)&(FineAngles/2-1)])
}

// Unit returns the table direction vector (cos, sin)
func (a Angle) Unit() Vec {
	sin, cos := a.SinCos()
	return Vec{X: cos, Y: sin}
}

// --- Arithmetic ---

func (a Angle) Add(b Angle) Angle { return a + b }
func (a Angle) Sub(b Angle) Angle { return a - b }
func (a Angle) Neg() Angle        { return -a }

// --- Conversion ---

// AngleFromInt16 converts a compact map angle in degrees, quantised to 45-degree steps
func AngleFromInt16(deg int16) Angle {
	return ANG45 * Angle(uint32(int32(deg/45)))
}

// Int16 is the inverse of AngleFromInt16: the angle rounded down to a 45-degree step, in degrees
func (a Angle) Int16() int16 {
	return int16(a/ANG45) * 45
}

// FromDegrees truncates toward zero; negative degrees wrap
func FromDegrees(deg float64) Angle {
	turns := deg / 360
	turns -= math.Floor(turns)
	return Angle(uint32(uint64(turns * (1 << 32))))
}

// Fixed returns the angle in degrees as 16.16
func (a Angle) Fixed() Fixed {
	return Fixed((uint64(a) << FracBits) / uint64(ANG1))
}

// Degrees is for presentation only
func (a Angle) Degrees() float64 {
	return float64(a) * (360.0 / (1 << 32))
}

// Radians is for presentation only; simulation stays on the binary angle
func (a Angle) Radians() Radians {
	return NewRadians(float64(a) * (2 * math.Pi / (1 << 32)))
}

func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'f', 3, 64) + "°"
}
