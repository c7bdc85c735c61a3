package vmath

import (
	"math"
)

// Vec is a 2D point or direction in 16.16 map units
type Vec struct {
	X, Y Fixed
}

func NewVec(x, y Fixed) Vec { return Vec{X: x, Y: y} }

// VecInt builds a vector from whole map units
func VecInt(x, y int32) Vec { return Vec{X: FromInt(x), Y: FromInt(y)} }

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Neg() Vec      { return Vec{X: -v.X, Y: -v.Y} }

// Scale multiplies both components by a scalar
func (v Vec) Scale(s Fixed) Vec { return Vec{X: v.X.Mul(s), Y: v.Y.Mul(s)} }

// Div divides both components, saturating per component like Fixed.Div
func (v Vec) Div(s Fixed) Vec { return Vec{X: v.X.Div(s), Y: v.Y.Div(s)} }

// AddIn accumulates o into v in place
func (v *Vec) AddIn(o Vec) {
	v.X += o.X
	v.Y += o.Y
}

// ScaleIn scales v in place
func (v *Vec) ScaleIn(s Fixed) {
	v.X = v.X.Mul(s)
	v.Y = v.Y.Mul(s)
}

// Dot returns x1*x2 + y1*y2 in 16.16
func (v Vec) Dot(o Vec) Fixed {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y)
}

// Cross returns the z component of the 2D cross product in 16.16
func (v Vec) Cross(o Vec) Fixed {
	return v.X.Mul(o.Y) - v.Y.Mul(o.X)
}

// Length is the octagonal approximation max + min/2
// Movement and AI thresholds are tuned against this bias; do not replace with a true norm
func (v Vec) Length() Fixed {
	dx := v.X.Abs()
	dy := v.Y.Abs()
	if dx < dy {
		return dx + dy - (dx >> 1)
	}
	return dx + dy - (dy >> 1)
}

// LengthExact returns the Euclidean norm via float sqrt, truncated back to 16.16
// Use where accuracy matters more than legacy bias (presentation, aim slopes)
func (v Vec) LengthExact() Fixed {
	return FromFloat(math.Hypot(v.X.Float(), v.Y.Float()))
}

// Distance uses the approximate length; collision radii and melee range checks rely on it
func (v Vec) Distance(o Vec) Fixed { return v.Sub(o).Length() }

// DistanceExact uses the Euclidean length
func (v Vec) DistanceExact(o Vec) Fixed { return v.Sub(o).LengthExact() }

// Float returns the components as float64 for presentation
func (v Vec) Float() (x, y float64) { return v.X.Float(), v.Y.Float() }

func (v Vec) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ")"
}
