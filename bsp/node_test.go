package bsp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/fixedcore/vmath"
)

func line(ox, oy, dx, dy int32) Node {
	return Node{Origin: vmath.VecInt(ox, oy), Delta: vmath.VecInt(dx, dy)}
}

func TestPointOnSideAxisAligned(t *testing.T) {
	east := line(0, 0, 64, 0)
	west := line(0, 0, -64, 0)
	north := line(0, 0, 0, 64)
	south := line(0, 0, 0, -64)

	tests := []struct {
		name string
		n    Node
		p    vmath.Vec
		want vmath.Side
	}{
		{"east below", east, vmath.VecInt(5, -5), vmath.Front},
		{"east above", east, vmath.VecInt(5, 5), vmath.Back},
		{"east on line", east, vmath.VecInt(5, 0), vmath.Front},
		{"west below", west, vmath.VecInt(5, -5), vmath.Back},
		{"west above", west, vmath.VecInt(5, 5), vmath.Front},
		{"north right", north, vmath.VecInt(5, 5), vmath.Front},
		{"north left", north, vmath.VecInt(-5, 5), vmath.Back},
		{"north on line", north, vmath.VecInt(0, 5), vmath.Back},
		{"south right", south, vmath.VecInt(5, 5), vmath.Back},
		{"south left", south, vmath.VecInt(-5, 5), vmath.Front},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.PointOnSide(tt.p))
		})
	}
}

func TestPointOnSideOnHorizontalLineIsStable(t *testing.T) {
	east := line(0, 0, 64, 0)
	for x := int32(-1000); x <= 1000; x += 7 {
		assert.Equal(t, vmath.Front, east.PointOnSide(vmath.VecInt(x, 0)), "x=%d", x)
		assert.Equal(t, vmath.Front, east.PointOnSide(vmath.Vec{X: vmath.Fixed(x), Y: 0}), "raw x=%d", x)
	}
}

func TestPointOnSideDiagonal(t *testing.T) {
	n := line(0, 0, 64, 64)

	tests := []struct {
		name string
		p    vmath.Vec
		want vmath.Side
	}{
		{"on the line", vmath.VecInt(2, 2), vmath.Back},
		{"right", vmath.VecInt(2, 0), vmath.Front},
		{"left", vmath.VecInt(0, 2), vmath.Back},
		{"opposite signs left", vmath.VecInt(-2, 3), vmath.Back},
		{"opposite signs right", vmath.VecInt(3, -2), vmath.Front},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.PointOnSide(tt.p))
		})
	}
}

// Off the line both classifiers agree with the sign of the cross product
func TestPointOnSideMatchesTrace(t *testing.T) {
	lines := []Node{
		line(0, 0, 64, 64),
		line(16, -8, -96, 32),
		line(-40, 20, 10, -70),
		line(5, 5, -64, -64),
		line(0, 0, 64, 0),
		line(0, 0, 0, 64),
		line(3, 3, 0, -64),
		line(7, -2, -50, 0),
	}
	for i := range lines {
		n := &lines[i]
		tr := vmath.NewTrace(n.Origin, n.Delta)
		for x := int32(-60); x <= 60; x += 3 {
			for y := int32(-60); y <= 60; y += 3 {
				p := vmath.VecInt(x, y)
				cross := int64(n.Delta.X>>vmath.FracBits)*int64(y-n.Origin.Y.Int()) -
					int64(n.Delta.Y>>vmath.FracBits)*int64(x-n.Origin.X.Int())
				if cross == 0 {
					continue
				}
				want := vmath.Front
				if cross > 0 {
					want = vmath.Back
				}
				assert.Equal(t, want, n.PointOnSide(p), "node %d point %v", i, p)
				assert.Equal(t, want, tr.PointOnSide(p), "trace %d point %v", i, p)
			}
		}
	}
}

func TestQuickSide(t *testing.T) {
	f := vmath.One
	_, ok := quickSide(f, f, f, f)
	assert.False(t, ok)

	side, ok := quickSide(f, f, -f, f)
	assert.True(t, ok)
	assert.Equal(t, vmath.Back, side)

	side, ok = quickSide(f, f, f, -f)
	assert.True(t, ok)
	assert.Equal(t, vmath.Front, side)

	// zero counts as positive
	_, ok = quickSide(f, f, 0, 0)
	assert.False(t, ok)
}

func TestBBox(t *testing.T) {
	b := NewBBox(vmath.VecInt(10, -10), vmath.VecInt(0, 0))
	assert.Equal(t, vmath.VecInt(0, 0), b.TopLeft)
	assert.Equal(t, vmath.VecInt(10, -10), b.BottomRight)

	assert.True(t, b.Contains(vmath.VecInt(5, -5)))
	assert.False(t, b.Contains(vmath.VecInt(0, -5)), "left edge")
	assert.False(t, b.Contains(vmath.VecInt(5, -10)), "bottom edge")
	assert.False(t, b.Contains(vmath.VecInt(5, 5)))

	n := Node{BBox: [2]BBox{b, NewBBox(vmath.VecInt(-10, 10), vmath.VecInt(0, 0))}}
	assert.True(t, n.PointInBounds(vmath.VecInt(5, -5), vmath.Front))
	assert.False(t, n.PointInBounds(vmath.VecInt(5, -5), vmath.Back))
	assert.True(t, n.PointInBounds(vmath.VecInt(-5, 5), vmath.Back))
}
