package vmath

// Side of a partition line or trace a point falls on
type Side int

const (
	Front Side = 0
	Back  Side = 1
)

func (s Side) String() string {
	if s == Front {
		return "front"
	}
	return "back"
}

// Trace is a directed line: an origin plus a delta
// Used for hit-scans and sight checks as a ray or the infinite extension of a segment
type Trace struct {
	Origin Vec
	Delta  Vec
}

// MaxTraceRange is the longest whole-unit range TraceFromAngle can scale a unit
// direction by without overflowing 32 bits
const MaxTraceRange = 32767

func NewTrace(origin, delta Vec) Trace { return Trace{Origin: origin, Delta: delta} }

// TraceBetween returns the trace from a to b
func TraceBetween(a, b Vec) Trace { return Trace{Origin: a, Delta: b.Sub(a)} }

// TraceFromAngle builds a shot of the given range along the angle
// The range is taken in whole units and multiplied into the table direction,
// so it must not exceed MaxTraceRange units or the delta wraps
func TraceFromAngle(origin Vec, a Angle, distance Fixed) Trace {
	n := Fixed(distance.Floor())
	u := a.Unit()
	return Trace{Origin: origin, Delta: Vec{X: u.X * n, Y: u.Y * n}}
}

// End returns Origin + Delta
func (t Trace) End() Vec { return t.Origin.Add(t.Delta) }

// At returns the point at a fraction along the trace
func (t Trace) At(frac Fixed) Vec { return t.Origin.Add(t.Delta.Scale(frac)) }

// PointOnSide classifies p with a single cross-product comparison:
// dy*dx_trace <= dy_trace*dx is Front, otherwise Back
// Operands are pre-shifted by 8 so the product stays within 32 bits
func (t Trace) PointOnSide(p Vec) Side {
	dx := p.X - t.Origin.X
	dy := p.Y - t.Origin.Y

	left := (t.Delta.Y >> 8).Mul(dx >> 8)
	right := (dy >> 8).Mul(t.Delta.X >> 8)

	if right <= left {
		return Front
	}
	return Back
}

// interceptDenominator is the scaled cross product of the two directions
func interceptDenominator(v2, v1 Trace) Fixed {
	return (v1.Delta.Y >> 8).Mul(v2.Delta.X) - (v1.Delta.X >> 8).Mul(v2.Delta.Y)
}

// InterceptVector returns the fraction along v2 at which it crosses the infinite line v1
//
// Parallel lines return Zero, which is indistinguishable from a crossing at the origin
// of v2; callers that care must check Parallel first or use Intercept
func InterceptVector(v2, v1 Trace) Fixed {
	den := interceptDenominator(v2, v1)
	if den == 0 {
		return Zero
	}
	num := ((v1.Origin.X - v2.Origin.X) >> 8).Mul(v1.Delta.Y) +
		((v2.Origin.Y - v1.Origin.Y) >> 8).Mul(v1.Delta.X)
	return num.Div(den)
}

// Intercept is InterceptVector with parallelism reported explicitly
func Intercept(v2, v1 Trace) (Fixed, bool) {
	if Parallel(v2, v1) {
		return Zero, false
	}
	return InterceptVector(v2, v1), true
}

// Parallel reports whether InterceptVector would take its zero-denominator branch
func Parallel(a, b Trace) bool {
	return interceptDenominator(a, b) == 0
}
