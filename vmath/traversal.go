package vmath

import (
	"math"
)

// BlockTraverser is a zero-allocation iterator over the blockmap cells a segment
// touches, in order from start to end (Supercover DDA)
// Coordinates are relative to the blockmap origin and a cell spans 1<<shift raw
// units, so shift FracBits+7 gives 128-unit blocks
type BlockTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	// Crossing parameters along the segment, 16.16 widened to avoid overflow
	tMaxX, tMaxY     int64
	tDeltaX, tDeltaY int64

	started bool
	done    bool
}

// toBlockSpace rescales a raw coordinate so that one cell spans FracUnit
func toBlockSpace(v Fixed, shift uint) int64 {
	return int64(v) << FracBits >> shift
}

// axisStep computes the DDA stepping terms for one axis
func axisStep(from, to int64) (step int, tMax, tDelta int64) {
	d := to - from
	step = 1
	if d < 0 {
		step = -1
		d = -d
	}
	if d == 0 {
		return step, math.MaxInt64, 0
	}

	tDelta = (int64(FracUnit) << FracBits) / d
	frac := from & (FracUnit - 1)
	if step > 0 {
		tMax = (FracUnit - frac) * tDelta >> FracBits
	} else {
		tMax = frac * tDelta >> FracBits
	}
	return step, tMax, tDelta
}

// NewBlockTraverser creates an iterator over the cells from a to b
func NewBlockTraverser(a, b Vec, shift uint) BlockTraverser {
	ax, ay := toBlockSpace(a.X, shift), toBlockSpace(a.Y, shift)
	bx, by := toBlockSpace(b.X, shift), toBlockSpace(b.Y, shift)

	t := BlockTraverser{
		currX: int(ax >> FracBits), currY: int(ay >> FracBits),
		targetX: int(bx >> FracBits), targetY: int(by >> FracBits),
	}
	t.stepX, t.tMaxX, t.tDeltaX = axisStep(ax, bx)
	t.stepY, t.tMaxY, t.tDeltaY = axisStep(ay, by)
	return t
}

// Next advances the traverser to the next cell.
// Returns true if a valid cell is available via Pos().
func (t *BlockTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	if t.tMaxX < t.tMaxY {
		if t.currX != t.targetX {
			t.stepAxisX()
		} else {
			t.stepAxisY()
		}
	} else if t.tMaxX > t.tMaxY {
		if t.currY != t.targetY {
			t.stepAxisY()
		} else {
			t.stepAxisX()
		}
	} else {
		// Through a corner: step both axes at once
		if t.currX != t.targetX {
			t.stepAxisX()
		}
		if t.currY != t.targetY {
			t.stepAxisY()
		}
	}

	return true
}

func (t *BlockTraverser) stepAxisX() {
	t.currX += t.stepX
	t.tMaxX += t.tDeltaX
}

func (t *BlockTraverser) stepAxisY() {
	t.currY += t.stepY
	t.tMaxY += t.tDeltaY
}

// Pos returns the current cell coordinates.
func (t *BlockTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// TraverseBlocks visits every cell from a to b; returning false from visit stops early
func TraverseBlocks(a, b Vec, shift uint, visit func(x, y int) bool) {
	t := NewBlockTraverser(a, b, shift)
	for t.Next() {
		if !visit(t.Pos()) {
			return
		}
	}
}
