package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixedcore/scene"
	"github.com/lixenwraith/fixedcore/vmath"
)

func newTestSandbox(t *testing.T, sc scene.Scene) (*Sandbox, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	sb, err := NewSandbox(screen, sc)
	require.NoError(t, err)
	return sb, screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestStatusDefaultScene(t *testing.T) {
	sb, _ := newTestSandbox(t, scene.Default())
	st := sb.Status()

	assert.Equal(t, 2, st.Subsector)
	assert.Equal(t, []vmath.Side{vmath.Back, vmath.Front, vmath.Back}, st.Sides)
	require.Len(t, st.Hits, 3)

	// the vertical wall is a quarter of the way along the shot
	assert.Equal(t, vmath.Fourth, st.Hits[0].Frac)
	assert.True(t, st.Hits[0].OnWall)

	// the diagonal's extension is crossed, the segment itself is not
	assert.Equal(t, vmath.Fixed(10238), st.Hits[1].Frac)
	assert.False(t, st.Hits[1].OnWall)

	// the root line is almost but not exactly parallel to an eastward shot
	assert.False(t, st.Hits[2].Parallel)
	assert.False(t, st.Hits[2].OnWall)

	assert.Equal(t, 0, st.Nearest)

	// the shot stops at the wall inside block column 3
	assert.Equal(t, [][2]int{{2, 5}, {3, 5}}, st.Blocks)
}

func TestStatusParallelWall(t *testing.T) {
	sc := scene.Default()
	// exactly the direction of the eastward table shot at range 256
	sc.Subsectors = 2
	sc.Nodes = []scene.NodeSpec{{
		Origin: [2]float64{0, -50},
		Delta:  [2]float64{255.99609375, 0.09765625},
		Front:  scene.SubsectorRef(0),
		Back:   scene.SubsectorRef(1),
	}}
	require.NoError(t, sc.Validate())

	sb, _ := newTestSandbox(t, sc)
	st := sb.Status()

	require.Len(t, st.Hits, 1)
	assert.True(t, st.Hits[0].Parallel)
	assert.Equal(t, -1, st.Nearest)
	assert.Equal(t, 1, st.Subsector)
}

func TestHandleKey(t *testing.T) {
	sb, _ := newTestSandbox(t, scene.Default())
	start := sb.pos

	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, vmath.ANG5, sb.angle)

	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.Equal(t, vmath.Angle(0).Sub(vmath.ANG5), sb.angle)

	sb.angle = 0
	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Equal(t, start.Add(vmath.Angle(0).Unit().Scale(vmath.FromInt(4))), sb.pos)

	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Equal(t, start, sb.pos)

	assert.True(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, sb.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestDraw(t *testing.T) {
	sb, screen := newTestSandbox(t, scene.Default())
	sb.Draw()

	col, row := sb.toCell(sb.pos)
	mainc, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, '@', mainc)

	st := sb.Status()
	col, row = sb.toCell(st.Shot.At(st.Hits[st.Nearest].Frac))
	mainc, _, _, _ = screen.GetContent(col, row)
	assert.Equal(t, '*', mainc)

	head := rowText(screen, 24-statusRows, 80)
	assert.Contains(t, head, "angle 0x00000000")
	assert.Contains(t, head, "subsector 2")
	assert.Contains(t, head, "blocks 2")

	detail := rowText(screen, 24-statusRows+1, 80)
	assert.True(t, strings.HasPrefix(detail, "n0:back n1:front n2:back | w0:0.25*"), detail)
}

func TestDrawTinyScreen(t *testing.T) {
	sb, screen := newTestSandbox(t, scene.Default())
	screen.SetSize(5, 3)
	sb.Resize()

	assert.NotPanics(t, sb.Draw)
}
