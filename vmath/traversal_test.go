package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	unitShift  = FracBits
	blockShift = FracBits + 7
)

func collectBlocks(a, b Vec, shift uint) [][2]int {
	var cells [][2]int
	TraverseBlocks(a, b, shift, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	return cells
}

func TestTraverseBlocks(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Vec
		shift uint
		want  [][2]int
	}{
		{"horizontal", VecInt(1, 1), VecInt(300, 1), blockShift, [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"single cell", VecInt(5, 5), VecInt(10, 10), blockShift, [][2]int{{0, 0}}},
		{"through corners", Vec{Half, Half}, Vec{Two + Half, Two + Half}, unitShift, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", Vec{Half, Half}, Vec{FromInt(3) + Half, One + Half}, unitShift,
			[][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}}},
		{"backwards", Vec{Two + Half, Half}, Vec{Half, Half}, unitShift, [][2]int{{2, 0}, {1, 0}, {0, 0}}},
		{"negative start floors", Vec{-Half, Half}, Vec{Half, Half}, unitShift, [][2]int{{-1, 0}, {0, 0}}},
		{"negative quadrant", VecInt(-300, -10), VecInt(-10, 200), blockShift,
			[][2]int{{-3, -1}, {-3, 0}, {-2, 0}, {-1, 0}, {-1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectBlocks(tt.a, tt.b, tt.shift))
		})
	}
}

func TestTraverseBlocksStops(t *testing.T) {
	var n int
	TraverseBlocks(VecInt(0, 0), VecInt(1000, 0), blockShift, func(x, y int) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestBlockTraverserMatchesCallback(t *testing.T) {
	a, b := VecInt(-77, 13), VecInt(250, -190)

	var got [][2]int
	it := NewBlockTraverser(a, b, blockShift)
	for it.Next() {
		x, y := it.Pos()
		got = append(got, [2]int{x, y})
	}
	assert.False(t, it.Next(), "exhausted iterator stays exhausted")
	assert.Equal(t, collectBlocks(a, b, blockShift), got)

	// consecutive cells are neighbours, including diagonally
	for i := 1; i < len(got); i++ {
		dx, dy := got[i][0]-got[i-1][0], got[i][1]-got[i-1][1]
		assert.LessOrEqual(t, dx*dx+dy*dy, 2, "step %d", i)
	}
	assert.Equal(t, [2]int{-1, 0}, got[0])
	assert.Equal(t, [2]int{1, -2}, got[len(got)-1])
}
