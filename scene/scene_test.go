package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixedcore/bsp"
	"github.com/lixenwraith/fixedcore/vmath"
)

func TestDefaultScene(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	tree, err := s.Tree()
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 4, tree.Subsectors())

	tests := []struct {
		name string
		p    vmath.Vec
		want int
	}{
		{"viewer", s.Viewer.Position(), 2},
		{"upper right", vmath.VecInt(40, 40), 1},
		{"lower left", vmath.VecInt(-10, -100), 0},
		{"lower right", vmath.VecInt(100, -10), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.Locate(tt.p))
		})
	}
}

func TestDefaultBoxesAgreeWithSides(t *testing.T) {
	s := Default()
	tree, err := s.Tree()
	require.NoError(t, err)

	// a point inside exactly one half-space box classifies to that half
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		for x := int32(-120); x <= 120; x += 15 {
			for y := int32(-120); y <= 120; y += 15 {
				p := vmath.VecInt(x, y)
				inFront := n.PointInBounds(p, vmath.Front)
				inBack := n.PointInBounds(p, vmath.Back)
				switch {
				case inFront && !inBack:
					assert.Equal(t, vmath.Front, n.PointOnSide(p), "node %d point %v", i, p)
				case inBack && !inFront:
					assert.Equal(t, vmath.Back, n.PointOnSide(p), "node %d point %v", i, p)
				}
			}
		}
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "split.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 64.0, s.Extent)
	assert.Equal(t, 2, s.Subsectors)
	require.Len(t, s.Nodes, 1)

	// unset fields keep their defaults
	assert.Equal(t, Default().Block, s.Block)
	assert.Equal(t, Default().Viewer.Range, s.Viewer.Range)

	assert.Equal(t, vmath.Vec{X: vmath.FromFloat(-16.5), Y: vmath.FromInt(8)}, s.Viewer.Position())
	assert.Equal(t, vmath.ANG90, s.Viewer.Heading())

	tree, err := s.Tree()
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Locate(s.Viewer.Position()))
	assert.Equal(t, 1, tree.Locate(vmath.VecInt(10, 0)))

	walls := s.Walls()
	require.Len(t, walls, 1)
	assert.Equal(t, vmath.VecInt(0, 64), walls[0].End())

	n := tree.Node(0)
	assert.True(t, n.PointInBounds(vmath.VecInt(10, 0), vmath.Front))
	assert.True(t, n.PointInBounds(vmath.VecInt(-10, 0), vmath.Back))
}

func TestBlockmap(t *testing.T) {
	s := Default()
	assert.Equal(t, uint(vmath.FracBits+5), s.BlockShift())
	assert.Equal(t, vmath.VecInt(-128, -128), s.BlockOrigin())

	s.Block = 128
	assert.Equal(t, uint(vmath.FracBits+7), s.BlockShift())

	var cells [][2]int
	vmath.TraverseBlocks(
		s.Viewer.Position().Sub(s.BlockOrigin()),
		vmath.VecInt(100, 48).Sub(s.BlockOrigin()),
		s.BlockShift(),
		func(x, y int) bool {
			cells = append(cells, [2]int{x, y})
			return true
		})
	assert.Equal(t, [][2]int{{0, 1}, {1, 1}}, cells)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	t.Run("syntax", func(t *testing.T) {
		_, err := Load(write("bad.yaml", "nodes: [\n"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Load(write("empty.yaml", "subsectors: 0\n"))
		assert.ErrorIs(t, err, ErrEmptyScene)
	})

	t.Run("ambiguous child", func(t *testing.T) {
		body := "subsectors: 1\nnodes:\n  - origin: [0, 0]\n    delta: [1, 0]\n    front: {subsector: 0, node: 0}\n    back: {subsector: 0}\n"
		_, err := Load(write("ambiguous.yaml", body))
		assert.ErrorIs(t, err, ErrBadRef)
	})

	t.Run("missing child", func(t *testing.T) {
		body := "subsectors: 1\nnodes:\n  - origin: [0, 0]\n    delta: [1, 0]\n    front: {subsector: 0}\n"
		_, err := Load(write("missing.yaml", body))
		assert.ErrorIs(t, err, ErrBadRef)
	})

	t.Run("zero length", func(t *testing.T) {
		body := "subsectors: 1\nnodes:\n  - origin: [3, 3]\n    delta: [0, 0]\n    front: {subsector: 0}\n    back: {subsector: 0}\n"
		_, err := Load(write("zero.yaml", body))
		assert.ErrorContains(t, err, "zero-length")
	})

	t.Run("range", func(t *testing.T) {
		_, err := Load(write("range.yaml", "viewer: {x: 0, y: 0, range: 40000, step: 4}\n"))
		assert.ErrorContains(t, err, "viewer range")

		sc, err := Load(write("longest.yaml", "viewer: {x: 0, y: 0, range: 32767, step: 4}\n"))
		require.NoError(t, err)
		assert.Equal(t, 32767.0, sc.Viewer.Range)
	})

	t.Run("block size", func(t *testing.T) {
		_, err := Load(write("block.yaml", "block: 48\n"))
		assert.ErrorContains(t, err, "power of two")
	})

	t.Run("forward reference", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "forward_ref.yaml"))
		assert.ErrorIs(t, err, bsp.ErrBadChild)
	})
}
