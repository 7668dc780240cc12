package input

import "sync/atomic"

// Latch collects button events from a listener goroutine between samples.
// Presses are remembered until the next Take, so a click that starts and
// ends between two samples is still reported.
type Latch struct {
	down    atomic.Uint32
	pressed atomic.Uint32
}

// Press marks b as down. Safe to call from any goroutine.
func (l *Latch) Press(b Buttons) {
	l.down.Or(uint32(b))
	l.pressed.Or(uint32(b))
}

// Release marks b as up. Safe to call from any goroutine.
func (l *Latch) Release(b Buttons) {
	l.down.And(^uint32(b))
}

// Take returns the buttons held for this sample and the buttons pressed
// since the last Take, then clears the pressed set. A button pressed and
// released in between counts as held for this one sample.
func (l *Latch) Take() (held, fresh Buttons) {
	fresh = Buttons(l.pressed.Swap(0))
	return Buttons(l.down.Load()) | fresh, fresh
}
