// Package trail keeps the recent pointer samples that make up the cursor
// trail, bounded both by count and by age.
package trail

import (
	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/geom"
)

// Node is one pointer sample.
type Node struct {
	Pos geom.Point
	At  int64 // monotonic milliseconds
}

// Buffer holds at most max nodes, none older than maxAge relative to the
// latest Observe. Nodes are stored oldest-first; At indexes newest-first.
type Buffer struct {
	nodes  []Node
	max    int
	maxAge int64
	eps    float64
}

// New creates a buffer bounded by max nodes and maxAge milliseconds.
func New(max int, maxAge int64) *Buffer {
	return &Buffer{
		nodes:  make([]Node, 0, max+1),
		max:    max,
		maxAge: maxAge,
		eps:    config.TrailEpsilon,
	}
}

// Observe records p at time now if it moved more than the epsilon from the
// newest node, then evicts expired or surplus nodes from the old end.
// It reports whether the buffer changed.
func (b *Buffer) Observe(p geom.Point, now int64) bool {
	changed := false
	if n := len(b.nodes); n == 0 || !b.nodes[n-1].Pos.Near(p, b.eps) {
		b.nodes = append(b.nodes, Node{Pos: p, At: now})
		changed = true
	}

	// Age and count both decrease toward the new end, so the first node that
	// survives ends the trim.
	for len(b.nodes) > 0 {
		oldest := b.nodes[0]
		if len(b.nodes) <= b.max && now-oldest.At <= b.maxAge {
			break
		}
		b.nodes = b.nodes[1:]
		changed = true
	}
	return changed
}

// Len returns the number of nodes.
func (b *Buffer) Len() int {
	return len(b.nodes)
}

// At returns the i-th node counting from the newest (i == 0).
func (b *Buffer) At(i int) Node {
	return b.nodes[len(b.nodes)-1-i]
}

// Cap returns the reserved node capacity.
func (b *Buffer) Cap() int {
	return cap(b.nodes)
}

// Compact moves the nodes into a right-sized backing array, releasing the
// slack left behind by evictions. Order and values are unchanged.
func (b *Buffer) Compact() {
	if cap(b.nodes) == len(b.nodes) {
		return
	}
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	b.nodes = nodes
}
