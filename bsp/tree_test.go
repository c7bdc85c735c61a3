package bsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixedcore/vmath"
)

// quadrants: the root splits on y=0, node 0 splits the upper half on x=0
//
//	 2 | 1
//	---+---
//	   0
func quadrants(t *testing.T) *Tree {
	t.Helper()
	upper := line(0, 0, 0, 64)
	upper.Child = [2]uint16{SubsectorFlag | 1, SubsectorFlag | 2}
	root := line(-64, 0, 128, 0)
	root.Child = [2]uint16{SubsectorFlag | 0, 0}

	tree, err := NewTree([]Node{upper, root}, 3)
	require.NoError(t, err)
	return tree
}

func TestLocate(t *testing.T) {
	tree := quadrants(t)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 3, tree.Subsectors())

	tests := []struct {
		name string
		p    vmath.Vec
		want int
	}{
		{"below", vmath.VecInt(10, -10), 0},
		{"upper right", vmath.VecInt(10, 10), 1},
		{"upper left", vmath.VecInt(-10, 10), 2},
		{"on root line", vmath.VecInt(5, 0), 0},
		{"on inner line", vmath.VecInt(0, 10), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.Locate(tt.p))
		})
	}
}

func TestLocateSingleSubsector(t *testing.T) {
	tree, err := NewTree(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Locate(vmath.VecInt(123, -456)))

	var seen []int
	tree.Walk(vmath.Vec{}, func(s int) bool {
		seen = append(seen, s)
		return true
	})
	assert.Equal(t, []int{0}, seen)
}

func TestWalkOrder(t *testing.T) {
	tree := quadrants(t)

	collect := func(p vmath.Vec) []int {
		var seen []int
		tree.Walk(p, func(s int) bool {
			seen = append(seen, s)
			return true
		})
		return seen
	}

	assert.Equal(t, []int{1, 2, 0}, collect(vmath.VecInt(10, 10)))
	assert.Equal(t, []int{2, 1, 0}, collect(vmath.VecInt(-10, 10)))
	assert.Equal(t, []int{0, 1, 2}, collect(vmath.VecInt(10, -10)))

	// the first subsector visited is always the one Locate returns
	for _, p := range []vmath.Vec{vmath.VecInt(10, 10), vmath.VecInt(-10, 10), vmath.VecInt(3, -7)} {
		assert.Equal(t, tree.Locate(p), collect(p)[0])
	}
}

func TestWalkStops(t *testing.T) {
	tree := quadrants(t)

	var seen []int
	tree.Walk(vmath.VecInt(10, 10), func(s int) bool {
		seen = append(seen, s)
		return len(seen) < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestNewTreeValidation(t *testing.T) {
	leaf := func(i uint16) uint16 { return SubsectorFlag | i }

	tests := []struct {
		name       string
		nodes      []Node
		subsectors int
		wantErr    error
	}{
		{
			name:       "no subsectors",
			subsectors: 0,
			wantErr:    ErrNoSubsectors,
		},
		{
			name:       "leaf out of range",
			nodes:      []Node{{Child: [2]uint16{leaf(0), leaf(2)}}},
			subsectors: 2,
			wantErr:    ErrBadChild,
		},
		{
			name:       "self reference",
			nodes:      []Node{{Child: [2]uint16{leaf(0), 0}}},
			subsectors: 1,
			wantErr:    ErrBadChild,
		},
		{
			name: "forward reference",
			nodes: []Node{
				{Child: [2]uint16{leaf(0), 1}},
				{Child: [2]uint16{leaf(0), leaf(1)}},
			},
			subsectors: 2,
			wantErr:    ErrBadChild,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := NewTree(tt.nodes, tt.subsectors)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTreeNodeCopy(t *testing.T) {
	tree := quadrants(t)
	n := tree.Node(0)
	n.Child[0] = 99
	assert.Equal(t, SubsectorFlag|1, tree.Node(0).Child[0])
}
