package bsp

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/fixedcore/vmath"
)

// SubsectorFlag marks a child reference as a leaf subsector index
const SubsectorFlag uint16 = 0x8000

var (
	ErrBadChild     = errors.New("bad child reference")
	ErrNoSubsectors = errors.New("tree has no subsectors")
)

// Tree is the level's immutable partition index
// The root is the last node; every node child index must be lower than its parent,
// which guarantees descent terminates
type Tree struct {
	nodes      []Node
	subsectors int
}

// NewTree validates the node list and takes ownership of it
// A map with a single subsector has no nodes
func NewTree(nodes []Node, subsectors int) (*Tree, error) {
	if subsectors <= 0 {
		return nil, ErrNoSubsectors
	}
	if len(nodes) >= int(SubsectorFlag) {
		return nil, fmt.Errorf("%d nodes exceeds index range: %w", len(nodes), ErrBadChild)
	}
	for i := range nodes {
		for side, child := range nodes[i].Child {
			if child&SubsectorFlag != 0 {
				if leaf := int(child &^ SubsectorFlag); leaf >= subsectors {
					return nil, fmt.Errorf("node %d side %d: subsector %d of %d: %w", i, side, leaf, subsectors, ErrBadChild)
				}
				continue
			}
			if int(child) >= i {
				return nil, fmt.Errorf("node %d side %d: child node %d not below parent: %w", i, side, child, ErrBadChild)
			}
		}
	}
	return &Tree{nodes: nodes, subsectors: subsectors}, nil
}

func (t *Tree) Len() int        { return len(t.nodes) }
func (t *Tree) Subsectors() int { return t.subsectors }

// Node returns a copy of node i
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Locate returns the subsector containing p
func (t *Tree) Locate(p vmath.Vec) int {
	if len(t.nodes) == 0 {
		return 0
	}
	child := uint16(len(t.nodes) - 1)
	for child&SubsectorFlag == 0 {
		n := &t.nodes[child]
		child = n.Child[n.PointOnSide(p)]
	}
	return int(child &^ SubsectorFlag)
}

// Walk visits subsectors front to back as seen from p
// Returning false from visit stops the walk
func (t *Tree) Walk(p vmath.Vec, visit func(subsector int) bool) {
	if len(t.nodes) == 0 {
		visit(0)
		return
	}
	t.walk(uint16(len(t.nodes)-1), p, visit)
}

func (t *Tree) walk(child uint16, p vmath.Vec, visit func(int) bool) bool {
	if child&SubsectorFlag != 0 {
		return visit(int(child &^ SubsectorFlag))
	}
	n := &t.nodes[child]
	side := n.PointOnSide(p)
	if !t.walk(n.Child[side], p, visit) {
		return false
	}
	return t.walk(n.Child[side^1], p, visit)
}
