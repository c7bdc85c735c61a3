package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fixedcore/bsp"
	"github.com/lixenwraith/fixedcore/scene"
	"github.com/lixenwraith/fixedcore/vmath"
)

// statusRows are reserved at the bottom of the screen
const statusRows = 2

var (
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlock  = tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
	styleHit    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleViewer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	wallColors  = []tcell.Color{tcell.ColorGreen, tcell.ColorBlue, tcell.ColorPurple, tcell.ColorTeal, tcell.ColorOlive}
)

// Hit is the shot measured against one partition line
type Hit struct {
	// Frac is the fraction along the shot where it meets the line
	Frac     vmath.Fixed
	Parallel bool
	// OnWall is set when the crossing lies within both the shot and the wall segment
	OnWall bool
}

// Status is everything the status lines report for the current viewer
type Status struct {
	Subsector int
	Sides     []vmath.Side
	Shot      vmath.Trace
	Hits      []Hit
	// Nearest indexes Hits, -1 when no wall is hit
	Nearest int
	// Blocks are the blockmap cells the shot crosses before it stops
	Blocks [][2]int
}

type Sandbox struct {
	screen tcell.Screen
	scene  scene.Scene
	tree   *bsp.Tree
	walls  []vmath.Trace

	pos   vmath.Vec
	angle vmath.Angle
	step  vmath.Fixed
	reach vmath.Fixed

	width, height int
}

func NewSandbox(screen tcell.Screen, sc scene.Scene) (*Sandbox, error) {
	tree, err := sc.Tree()
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	s := &Sandbox{
		screen: screen,
		scene:  sc,
		tree:   tree,
		walls:  sc.Walls(),
		pos:    sc.Viewer.Position(),
		angle:  sc.Viewer.Heading(),
		step:   vmath.FromFloat(sc.Viewer.Step),
		reach:  vmath.FromFloat(sc.Viewer.Range),
	}
	s.width, s.height = screen.Size()
	return s, nil
}

// Status classifies the viewer and intersects its shot with every wall
func (s *Sandbox) Status() Status {
	st := Status{
		Subsector: s.tree.Locate(s.pos),
		Sides:     make([]vmath.Side, s.tree.Len()),
		Shot:      vmath.TraceFromAngle(s.pos, s.angle, s.reach),
		Hits:      make([]Hit, len(s.walls)),
		Nearest:   -1,
	}
	for i := range st.Sides {
		n := s.tree.Node(i)
		st.Sides[i] = n.PointOnSide(s.pos)
	}
	for i, wall := range s.walls {
		frac, ok := vmath.Intercept(st.Shot, wall)
		if !ok {
			st.Hits[i] = Hit{Parallel: true}
			continue
		}
		along := vmath.InterceptVector(wall, st.Shot)
		h := Hit{
			Frac:   frac,
			OnWall: frac >= 0 && frac <= vmath.One && along >= 0 && along <= vmath.One,
		}
		st.Hits[i] = h
		if h.OnWall && (st.Nearest < 0 || frac < st.Hits[st.Nearest].Frac) {
			st.Nearest = i
		}
	}

	end := st.Shot.End()
	if st.Nearest >= 0 {
		end = st.Shot.At(st.Hits[st.Nearest].Frac)
	}
	origin := s.scene.BlockOrigin()
	vmath.TraverseBlocks(st.Shot.Origin.Sub(origin), end.Sub(origin), s.scene.BlockShift(), func(x, y int) bool {
		st.Blocks = append(st.Blocks, [2]int{x, y})
		return true
	})
	return st
}

// HandleKey applies one key press and reports whether the sandbox should keep running
func (s *Sandbox) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.angle = s.angle.Add(vmath.ANG5)
	case tcell.KeyRight:
		s.angle = s.angle.Sub(vmath.ANG5)
	case tcell.KeyUp:
		s.pos.AddIn(s.angle.Unit().Scale(s.step))
	case tcell.KeyDown:
		s.pos.AddIn(s.angle.Unit().Scale(s.step).Neg())
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}
	log.Printf("viewer %s angle %s", s.pos, s.angle)
	return true
}

func (s *Sandbox) Resize() {
	s.width, s.height = s.screen.Size()
}

// toCell projects map coordinates onto the map area above the status rows
// North is up
func (s *Sandbox) toCell(p vmath.Vec) (col, row int) {
	ext := s.scene.Extent
	x, y := p.Float()
	rows := s.height - statusRows
	col = int((x + ext) / (2 * ext) * float64(s.width-1))
	row = int((ext - y) / (2 * ext) * float64(rows-1))
	return col, row
}

func (s *Sandbox) put(p vmath.Vec, r rune, style tcell.Style) {
	col, row := s.toCell(p)
	if col < 0 || col >= s.width || row < 0 || row >= s.height-statusRows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

// plot samples a trace densely enough to touch every cell it crosses
func (s *Sandbox) plot(t vmath.Trace, r rune, style tcell.Style) {
	c0, r0 := s.toCell(t.Origin)
	c1, r1 := s.toCell(t.End())
	steps := max(abs(c1-c0), abs(r1-r0)) + 1
	for i := 0; i <= steps; i++ {
		frac := vmath.FromInt(int32(i)).Div(vmath.FromInt(int32(steps)))
		s.put(t.At(frac), r, style)
	}
}

func (s *Sandbox) Draw() {
	s.screen.Clear()
	if s.width < 10 || s.height < statusRows+4 {
		s.screen.Show()
		return
	}

	st := s.Status()

	ext, block := s.scene.Extent, float64(s.scene.Block)
	for x := -ext; x <= ext; x += block {
		for y := -ext; y <= ext; y += block {
			s.put(vmath.NewVec(vmath.FromFloat(x), vmath.FromFloat(y)), '·', styleGrid)
		}
	}

	// mark the centre of each block the shot passes through
	origin := s.scene.BlockOrigin()
	for _, c := range st.Blocks {
		centre := vmath.NewVec(
			vmath.FromFloat((float64(c[0])+0.5)*block),
			vmath.FromFloat((float64(c[1])+0.5)*block),
		).Add(origin)
		s.put(centre, '+', styleBlock)
	}

	for i, w := range s.walls {
		s.plot(w, '#', tcell.StyleDefault.Foreground(wallColors[i%len(wallColors)]))
	}

	shot := st.Shot
	if st.Nearest >= 0 {
		hit := shot.At(st.Hits[st.Nearest].Frac)
		s.plot(vmath.TraceBetween(shot.Origin, hit), '.', styleShot)
		s.put(hit, '*', styleHit)
	} else {
		s.plot(shot, '.', styleShot)
	}

	s.put(s.pos, '@', styleViewer)

	lines := s.statusLines(st)
	for i, line := range lines {
		s.drawText(0, s.height-statusRows+i, line, styleStatus)
	}

	s.screen.Show()
}

func (s *Sandbox) statusLines(st Status) []string {
	head := fmt.Sprintf("angle 0x%08x %s  pos %s  subsector %d  blocks %d  [q quit]",
		uint32(s.angle), s.angle, s.pos, st.Subsector, len(st.Blocks))

	var b strings.Builder
	for i, side := range st.Sides {
		fmt.Fprintf(&b, "n%d:%s ", i, side)
	}
	b.WriteString("|")
	for i, h := range st.Hits {
		switch {
		case h.Parallel:
			fmt.Fprintf(&b, " w%d:parallel", i)
		case h.OnWall:
			fmt.Fprintf(&b, " w%d:%s*", i, h.Frac)
		default:
			fmt.Fprintf(&b, " w%d:%s", i, h.Frac)
		}
	}
	return []string{head, b.String()}
}

func (s *Sandbox) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= s.width {
			break
		}
		s.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < s.width; col++ {
		s.screen.SetContent(col, y, ' ', nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
