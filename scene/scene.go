// Package scene loads a small partitioned map and viewer for the trace sandbox.
// Values in the file are map units; they become vmath.Fixed once, at build time.
package scene

import (
	"errors"
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fixedcore/bsp"
	"github.com/lixenwraith/fixedcore/vmath"
)

var (
	ErrEmptyScene = errors.New("scene has no subsectors")
	ErrBadRef     = errors.New("child must name exactly one node or subsector")
)

// Scene holds the sandbox map and viewer
type Scene struct {
	// Half-width of the square play area, in map units
	Extent float64 `yaml:"extent"`
	// Blockmap cell size in map units, a power of two
	Block int `yaml:"block"`

	Viewer Viewer `yaml:"viewer"`

	Subsectors int        `yaml:"subsectors"`
	Nodes      []NodeSpec `yaml:"nodes"` // root last
}

// Viewer is the trace origin and heading
type Viewer struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"` // degrees, counter-clockwise from east
	Range float64 `yaml:"range"`
	Step  float64 `yaml:"step"` // distance per move key
}

// NodeSpec is one partition line. Boxes are optional [x1, y1, x2, y2] corners
type NodeSpec struct {
	Origin   [2]float64 `yaml:"origin"`
	Delta    [2]float64 `yaml:"delta"`
	Front    ChildRef   `yaml:"front"`
	Back     ChildRef   `yaml:"back"`
	FrontBox []float64  `yaml:"front_box,omitempty"`
	BackBox  []float64  `yaml:"back_box,omitempty"`
}

// ChildRef points at either a lower node or a subsector
type ChildRef struct {
	Node      *int `yaml:"node,omitempty"`
	Subsector *int `yaml:"subsector,omitempty"`
}

func NodeRef(i int) ChildRef      { return ChildRef{Node: &i} }
func SubsectorRef(i int) ChildRef { return ChildRef{Subsector: &i} }

func (r ChildRef) encode() (uint16, error) {
	switch {
	case r.Node != nil && r.Subsector == nil:
		if *r.Node < 0 || *r.Node >= int(bsp.SubsectorFlag) {
			return 0, fmt.Errorf("node %d: %w", *r.Node, bsp.ErrBadChild)
		}
		return uint16(*r.Node), nil
	case r.Subsector != nil && r.Node == nil:
		if *r.Subsector < 0 || *r.Subsector >= int(bsp.SubsectorFlag) {
			return 0, fmt.Errorf("subsector %d: %w", *r.Subsector, bsp.ErrBadChild)
		}
		return bsp.SubsectorFlag | uint16(*r.Subsector), nil
	}
	return 0, ErrBadRef
}

// Default returns a four-subsector scene split by a horizontal root line, a
// vertical line through the upper half and a diagonal through the lower half
//
//	  2  |  1
//	-----+-----
//	  0  \  3
func Default() Scene {
	return Scene{
		Extent: 128,
		Block:  32,
		Viewer: Viewer{X: -64, Y: 48, Angle: 0, Range: 256, Step: 4},

		Subsectors: 4,
		Nodes: []NodeSpec{
			{
				Origin:   [2]float64{0, 0},
				Delta:    [2]float64{0, 128},
				Front:    SubsectorRef(1),
				Back:     SubsectorRef(2),
				FrontBox: []float64{0, 128, 128, 0},
				BackBox:  []float64{-128, 128, 0, 0},
			},
			{
				Origin:   [2]float64{0, 0},
				Delta:    [2]float64{64, -128},
				Front:    SubsectorRef(0),
				Back:     SubsectorRef(3),
				FrontBox: []float64{-128, 0, 64, -128},
				BackBox:  []float64{0, 0, 128, -128},
			},
			{
				Origin:   [2]float64{-128, 0},
				Delta:    [2]float64{256, 0},
				Front:    NodeRef(1),
				Back:     NodeRef(0),
				FrontBox: []float64{-128, 0, 128, -128},
				BackBox:  []float64{-128, 128, 128, 0},
			},
		},
	}
}

// Load reads a scene file over Default
// A missing file yields the default scene
func Load(path string) (Scene, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading scene %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks values that the tree constructor cannot see
func (s *Scene) Validate() error {
	if s.Subsectors <= 0 {
		return ErrEmptyScene
	}
	if s.Extent <= 0 {
		return fmt.Errorf("extent %g must be positive", s.Extent)
	}
	if s.Block <= 0 || s.Block > 1<<14 || s.Block&(s.Block-1) != 0 {
		return fmt.Errorf("block size %d must be a power of two up to %d", s.Block, 1<<14)
	}
	if s.Viewer.Range <= 0 || s.Viewer.Range > vmath.MaxTraceRange {
		return fmt.Errorf("viewer range %g must be in (0, %d]", s.Viewer.Range, vmath.MaxTraceRange)
	}
	for i, n := range s.Nodes {
		if n.Delta[0] == 0 && n.Delta[1] == 0 {
			return fmt.Errorf("node %d: zero-length partition", i)
		}
		for _, box := range [][]float64{n.FrontBox, n.BackBox} {
			if len(box) != 0 && len(box) != 4 {
				return fmt.Errorf("node %d: box needs 4 values, got %d", i, len(box))
			}
		}
	}
	_, err := s.Tree()
	return err
}

// Tree builds the partition tree
func (s *Scene) Tree() (*bsp.Tree, error) {
	if s.Subsectors <= 0 {
		return nil, ErrEmptyScene
	}
	nodes := make([]bsp.Node, len(s.Nodes))
	for i, spec := range s.Nodes {
		n := bsp.Node{Origin: vec(spec.Origin), Delta: vec(spec.Delta)}
		var err error
		if n.Child[vmath.Front], err = spec.Front.encode(); err != nil {
			return nil, fmt.Errorf("node %d front: %w", i, err)
		}
		if n.Child[vmath.Back], err = spec.Back.encode(); err != nil {
			return nil, fmt.Errorf("node %d back: %w", i, err)
		}
		n.BBox[vmath.Front] = box(spec.FrontBox)
		n.BBox[vmath.Back] = box(spec.BackBox)
		nodes[i] = n
	}
	return bsp.NewTree(nodes, s.Subsectors)
}

// Walls returns each partition line as a trace, in node order
func (s *Scene) Walls() []vmath.Trace {
	walls := make([]vmath.Trace, len(s.Nodes))
	for i, spec := range s.Nodes {
		walls[i] = vmath.NewTrace(vec(spec.Origin), vec(spec.Delta))
	}
	return walls
}

// BlockShift is the raw-coordinate shift that maps a position to its block
func (s *Scene) BlockShift() uint {
	return vmath.FracBits + uint(bits.TrailingZeros(uint(s.Block)))
}

// BlockOrigin is the blockmap corner: blocks are counted from the bottom-left of the play area
func (s *Scene) BlockOrigin() vmath.Vec {
	e := vmath.FromFloat(-s.Extent)
	return vmath.NewVec(e, e)
}

func (v Viewer) Position() vmath.Vec { return vmath.NewVec(vmath.FromFloat(v.X), vmath.FromFloat(v.Y)) }
func (v Viewer) Heading() vmath.Angle { return vmath.FromDegrees(v.Angle) }

func vec(xy [2]float64) vmath.Vec {
	return vmath.NewVec(vmath.FromFloat(xy[0]), vmath.FromFloat(xy[1]))
}

func box(v []float64) bsp.BBox {
	if len(v) != 4 {
		return bsp.BBox{}
	}
	return bsp.NewBBox(vec([2]float64{v[0], v[1]}), vec([2]float64{v[2], v[3]}))
}
