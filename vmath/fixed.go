package vmath

import (
	"math"
	"strconv"
)

// Fixed is a signed 16.16 fixed-point number: the raw int32 is value * 65536
// All arithmetic truncates exactly like the legacy 32-bit integer code so that
// simulation results are bit-identical across machines
type Fixed int32

// Q16.16 Fixed Point constants
const (
	FracBits = 16
	FracUnit = 1 << FracBits
)

const (
	Zero     Fixed = 0
	Fourth   Fixed = 1 << (FracBits - 2)
	Half     Fixed = 1 << (FracBits - 1)
	One      Fixed = FracUnit
	Two      Fixed = 2 * FracUnit
	Four     Fixed = 4 * FracUnit
	Eight    Fixed = 8 * FracUnit
	Sixteen  Fixed = 16 * FracUnit
	MaxFixed Fixed = math.MaxInt32
	MinFixed Fixed = math.MinInt32
)

// --- Conversion ---

func FromInt(i int32) Fixed   { return Fixed(i << FracBits) }
func FromInt16(i int16) Fixed { return Fixed(int32(i) << FracBits) }

// FromFloat truncates toward zero and clamps to the representable range
func FromFloat(f float64) Fixed {
	v := f * FracUnit
	switch {
	case v != v:
		return Zero
	case v >= math.MaxInt32:
		return MaxFixed
	case v <= math.MinInt32:
		return MinFixed
	}
	return Fixed(int32(v))
}

// Int truncates toward zero
func (f Fixed) Int() int32 { return int32(f) / FracUnit }

// Floor rounds toward negative infinity (arithmetic shift)
func (f Fixed) Floor() int32 { return int32(f) >> FracBits }

func (f Fixed) Float() float64 { return float64(f) / FracUnit }

// Byte returns the top 8 bits of the magnitude, used for light and colour ramps
func (f Fixed) Byte() uint8 { return uint8(f.Abs() >> 24) }

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'f', -1, 64)
}

// --- Arithmetic ---

// Add, Sub and Neg wrap on overflow as two's complement int32 does

func (f Fixed) Add(o Fixed) Fixed { return f + o }
func (f Fixed) Sub(o Fixed) Fixed { return f - o }
func (f Fixed) Neg() Fixed        { return -f }

// Abs of MinFixed is MinFixed, matching C abs() on INT_MIN
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

func (f Fixed) IsNeg() bool { return f < 0 }

// Shr is an arithmetic (sign-preserving) shift, a cheap divide by 2^n
func (f Fixed) Shr(n uint) Fixed { return f >> n }
func (f Fixed) Shl(n uint) Fixed { return f << n }

// Mul widens to 64 bits, shifts right by FracBits and narrows back
// True overflow wraps; there is no saturation on multiply
func (f Fixed) Mul(o Fixed) Fixed {
	return Fixed((int64(f) * int64(o)) >> FracBits)
}

// Div saturates instead of trapping when the quotient cannot fit:
// (|a| >> 14) >= |b| yields MaxFixed for same-sign operands, MinFixed otherwise
// A zero divisor takes the saturating branch for every numerator
func (f Fixed) Div(o Fixed) Fixed {
	if o == 0 || (f.Abs()>>14) >= o.Abs() {
		if (f ^ o) < 0 {
			return MinFixed
		}
		return MaxFixed
	}
	return Fixed((int64(f) << FracBits) / int64(o))
}

// --- Ordering ---

// Cmp returns -1, 0 or 1
func (f Fixed) Cmp(o Fixed) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	}
	return 0
}

func MinOf(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func MaxOf(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

// Sign returns -One, Zero or One
func (f Fixed) Sign() Fixed {
	if f < 0 {
		return -One
	}
	if f > 0 {
		return One
	}
	return Zero
}
