package vmath

import "math"

// Radians is a presentation-layer angle kept in [0, 2π)
// Never feed it back into simulation: use Angle there
type Radians float64

func NewRadians(r float64) Radians {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	// tiny negatives round up to a full turn
	if r >= 2*math.Pi {
		r = 0
	}
	return Radians(r)
}

// RadiansFromVector returns the continuous direction of (x, y)
func RadiansFromVector(x, y float64) Radians {
	return NewRadians(math.Atan2(y, x))
}

func (r Radians) Add(o Radians) Radians { return NewRadians(float64(r) + float64(o)) }
func (r Radians) Sub(o Radians) Radians { return NewRadians(float64(r) - float64(o)) }

func (r Radians) Sin() float64 { return math.Sin(float64(r)) }
func (r Radians) Cos() float64 { return math.Cos(float64(r)) }

// Unit returns the (cos, sin) direction
func (r Radians) Unit() (x, y float64) {
	s, c := math.Sincos(float64(r))
	return c, s
}

func (r Radians) Degrees() float64 { return float64(r) * 180 / math.Pi }

// Angle converts back to the nearest lower binary angle, for tooling only
func (r Radians) Angle() Angle {
	return FromDegrees(r.Degrees())
}
