package bsp

import (
	"github.com/lixenwraith/fixedcore/vmath"
)

// BBox is an axis-aligned box stored as top-left (min X, max Y) and
// bottom-right (max X, min Y) corners, the map's native order
type BBox struct {
	TopLeft     vmath.Vec
	BottomRight vmath.Vec
}

// NewBBox builds a box from any two opposite corners
func NewBBox(a, b vmath.Vec) BBox {
	return BBox{
		TopLeft:     vmath.Vec{X: vmath.MinOf(a.X, b.X), Y: vmath.MaxOf(a.Y, b.Y)},
		BottomRight: vmath.Vec{X: vmath.MaxOf(a.X, b.X), Y: vmath.MinOf(a.Y, b.Y)},
	}
}

// Contains is strict: points on an edge are outside
func (b BBox) Contains(p vmath.Vec) bool {
	return p.X > b.TopLeft.X &&
		p.X < b.BottomRight.X &&
		p.Y < b.TopLeft.Y &&
		p.Y > b.BottomRight.Y
}

// Node is a partition line with the bounding box of each half-space
// Built once from static map geometry and never mutated during play
type Node struct {
	Origin vmath.Vec
	Delta  vmath.Vec
	// BBox and Child are indexed by vmath.Side
	BBox  [2]BBox
	Child [2]uint16
}

// PointOnSide classifies p against the partition line
//
// Axis-aligned partitions compare a single coordinate with <=, so a point on a
// rightward horizontal line is Front and a point on an upward vertical line is Back.
// Otherwise a point exactly on the line is Back (right < left is required for Front)
func (n *Node) PointOnSide(p vmath.Vec) vmath.Side {
	ndx, ndy := n.Delta.X, n.Delta.Y

	if ndx == 0 {
		if p.X <= n.Origin.X {
			return sideIf(ndy > 0)
		}
		return sideIf(ndy < 0)
	}
	if ndy == 0 {
		if p.Y <= n.Origin.Y {
			return sideIf(ndx < 0)
		}
		return sideIf(ndx > 0)
	}

	dx := p.X - n.Origin.X
	dy := p.Y - n.Origin.Y

	if side, ok := quickSide(ndx, ndy, dx, dy); ok {
		return side
	}

	// Direction is reduced to whole units so the products fit in 32 bits
	left := (ndy >> vmath.FracBits).Mul(dx)
	right := dy.Mul(ndx >> vmath.FracBits)

	if right < left {
		return vmath.Front
	}
	return vmath.Back
}

// PointInBounds reports strict containment in the box of one half-space
// A cheap pre-filter before a full line intersection test
func (n *Node) PointInBounds(p vmath.Vec, side vmath.Side) bool {
	return n.BBox[side].Contains(p)
}

// quickSide decides the side from sign bits alone when the two cross terms
// ndy*dx and dy*ndx have opposite signs. ok is false when the signs agree and
// the products must be compared
// Zero counts as positive, as the raw sign bit does
func quickSide(ndx, ndy, dx, dy vmath.Fixed) (side vmath.Side, ok bool) {
	if signBit(ndy)^signBit(ndx)^signBit(dx)^signBit(dy) == 0 {
		return vmath.Front, false
	}
	// left term ndy*dx negative means the point is on the back
	if signBit(ndy)^signBit(dx) == 1 {
		return vmath.Back, true
	}
	return vmath.Front, true
}

func signBit(f vmath.Fixed) uint32 {
	return uint32(f) >> 31
}

func sideIf(back bool) vmath.Side {
	if back {
		return vmath.Back
	}
	return vmath.Front
}
