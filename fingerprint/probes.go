package fingerprint

import (
	"context"
	"encoding/binary"
	"hash"

	"github.com/lixenwraith/fixedcore/bsp"
	"github.com/lixenwraith/fixedcore/vmath"
)

// probe feeds one family of kernel results into h
// Implementations check ctx between rows so a cancelled run stops early
type probe func(ctx context.Context, h *writer) error

type shard struct {
	name string
	run  probe
}

// shards is the fixed probe set. Order is part of the digest
var shards = []shard{
	{"mul", probeMul},
	{"div", probeDiv},
	{"trig", probeTrig},
	{"slope", probeSlope},
	{"length", probeLength},
	{"side", probeSide},
	{"intercept", probeIntercept},
}

type writer struct {
	h     hash.Hash
	tmp   [8]byte
	count int
}

func (w *writer) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.tmp[:4], v)
	w.h.Write(w.tmp[:4])
	w.count++
}

func (w *writer) fixed(f vmath.Fixed) { w.u32(uint32(f)) }
func (w *writer) angle(a vmath.Angle) { w.u32(uint32(a)) }

// operands spans small, unit-scale and saturating magnitudes of both signs
var operands = []vmath.Fixed{
	0, 1, -1, 2, -2,
	vmath.Fourth, vmath.Half, vmath.One, -vmath.One, vmath.Two,
	vmath.FromInt(3), vmath.FromInt(-7), vmath.FromInt(100), vmath.FromInt(-255),
	vmath.FromInt(1024), vmath.FromInt(-16384), vmath.FromInt(32767),
	0x7fff, 0x12345, -0x54321,
	vmath.MaxFixed, vmath.MinFixed, vmath.MaxFixed - 1, vmath.MinFixed + 1,
}

func probeMul(ctx context.Context, w *writer) error {
	for _, a := range operands {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, b := range operands {
			w.fixed(a.Mul(b))
		}
	}
	return nil
}

func probeDiv(ctx context.Context, w *writer) error {
	for _, a := range operands {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, b := range operands {
			w.fixed(a.Div(b))
		}
	}
	return nil
}

func probeTrig(ctx context.Context, w *writer) error {
	for fine := uint32(0); fine < vmath.FineAngles; fine += 64 {
		if fine%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		a := vmath.Angle(fine << vmath.AngleToFineShift)
		sin, cos := a.SinCos()
		w.fixed(sin)
		w.fixed(cos)
		w.fixed(a.Tan())
	}
	return nil
}

// ring returns vectors around the origin at radius r, one per fine step of 128
func ring(r vmath.Fixed) []vmath.Vec {
	vs := make([]vmath.Vec, 0, vmath.FineAngles/128)
	for fine := uint32(0); fine < vmath.FineAngles; fine += 128 {
		vs = append(vs, vmath.Angle(fine<<vmath.AngleToFineShift).Unit().Scale(r))
	}
	return vs
}

var radii = []vmath.Fixed{vmath.One, vmath.FromInt(64), vmath.FromInt(3000)}

func probeSlope(ctx context.Context, w *writer) error {
	for _, r := range radii {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, v := range ring(r) {
			w.angle(v.ToAngle())
		}
	}
	for num := uint32(0); num < 1<<16; num += 997 {
		w.u32(vmath.SlopeDiv(num, 0x10000))
		w.u32(vmath.SlopeDiv(num<<8, 600))
	}
	return nil
}

func probeLength(ctx context.Context, w *writer) error {
	for _, r := range radii {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, v := range ring(r) {
			w.fixed(v.Length())
		}
	}
	return nil
}

// partitions are fixed splitting lines covering both axis cases and the general case
var partitions = []bsp.Node{
	{Origin: vmath.VecInt(0, 0), Delta: vmath.VecInt(64, 0)},
	{Origin: vmath.VecInt(0, 0), Delta: vmath.VecInt(-64, 0)},
	{Origin: vmath.VecInt(8, -8), Delta: vmath.VecInt(0, 64)},
	{Origin: vmath.VecInt(8, -8), Delta: vmath.VecInt(0, -64)},
	{Origin: vmath.VecInt(0, 0), Delta: vmath.VecInt(64, 64)},
	{Origin: vmath.VecInt(16, -8), Delta: vmath.VecInt(-96, 32)},
	{Origin: vmath.VecInt(-40, 20), Delta: vmath.VecInt(10, -70)},
}

func probeSide(ctx context.Context, w *writer) error {
	for i := range partitions {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := &partitions[i]
		tr := vmath.NewTrace(n.Origin, n.Delta)
		for x := int32(-48); x <= 48; x += 4 {
			for y := int32(-48); y <= 48; y += 4 {
				p := vmath.VecInt(x, y)
				w.u32(uint32(n.PointOnSide(p)))
				w.u32(uint32(tr.PointOnSide(p)))
			}
		}
	}
	return nil
}

func probeIntercept(ctx context.Context, w *writer) error {
	origin := vmath.VecInt(-32, -16)
	walls := make([]vmath.Trace, len(partitions))
	for i := range partitions {
		walls[i] = vmath.NewTrace(partitions[i].Origin, partitions[i].Delta)
	}
	for fine := uint32(0); fine < vmath.FineAngles; fine += 256 {
		if err := ctx.Err(); err != nil {
			return err
		}
		shot := vmath.TraceFromAngle(origin, vmath.Angle(fine<<vmath.AngleToFineShift), vmath.FromInt(512))
		for _, wall := range walls {
			w.fixed(vmath.InterceptVector(shot, wall))
		}
	}
	return nil
}
