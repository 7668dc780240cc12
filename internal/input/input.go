// Package input turns raw pointer state into the per-tick sample consumed by
// the scheduler, and detects button press edges.
package input

import "github.com/iburimskiy/cursor-overlay/internal/geom"

// Buttons is a bitmask of pressed mouse buttons.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
)

// Has reports whether every button in m is pressed.
func (b Buttons) Has(m Buttons) bool {
	return b&m == m
}

// Sample is one tick's worth of input, already in window-local coordinates.
type Sample struct {
	Pos     geom.Point
	Buttons Buttons
	// Pressed holds buttons that went down since the previous sample, for
	// sources that see individual events. Zero for polled sources.
	Pressed Buttons
	Now     int64 // monotonic milliseconds
}

// Source supplies one sample per tick.
type Source interface {
	Sample() Sample
}

// Edges reports which buttons went from up to down on this tick.
type Edges struct {
	Left, Right bool
}

// Any reports whether any press edge fired.
func (e Edges) Any() bool {
	return e.Left || e.Right
}

// EdgeDetector remembers the previous tick's button state.
type EdgeDetector struct {
	prev Buttons
}

// Update compares b with the previous call and returns the press edges. A
// button in fresh fires even when the previous state already had it down,
// which happens when it was released and pressed again between calls.
// The stored state always advances, whether or not the caller acts on the
// result.
func (d *EdgeDetector) Update(b, fresh Buttons) Edges {
	e := Edges{
		Left:  d.pressed(b, fresh, ButtonLeft),
		Right: d.pressed(b, fresh, ButtonRight),
	}
	d.prev = b
	return e
}

func (d *EdgeDetector) pressed(b, fresh, m Buttons) bool {
	return fresh.Has(m) || (b.Has(m) && !d.prev.Has(m))
}
