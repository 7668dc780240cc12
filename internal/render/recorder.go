package render

import (
	"image/color"
	"slices"

	"github.com/iburimskiy/cursor-overlay/internal/geom"
)

// OpKind identifies a recorded Surface call.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpPolyline
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpPolyline:
		return "polyline"
	case OpPresent:
		return "present"
	}
	return "unknown"
}

// Op is one recorded Surface call.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Color  color.NRGBA
}

// Recorder is a Surface that keeps every call, for tests and headless runs.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) StrokeLine(a, b geom.Point, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []geom.Point{a, b}, Color: c})
}

func (r *Recorder) StrokePolyline(pts []geom.Point, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: slices.Clone(pts), Color: c})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
}

// Count returns how many recorded calls have kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind k in call order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
