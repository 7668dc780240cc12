package scheduler

// State is the control state shared between the tray callbacks and the
// frame loop. Both run on the loop's goroutine: control events are drained
// at the start of a tick, before the render decision, so no locking is
// needed.
type State struct {
	Visible bool
	Running bool
}

// NewState returns a running, visible state.
func NewState() *State {
	return &State{Visible: true, Running: true}
}

// ToggleVisible flips visibility and returns the new value.
func (s *State) ToggleVisible() bool {
	s.Visible = !s.Visible
	return s.Visible
}

// Quit stops the loop after the current tick.
func (s *State) Quit() {
	s.Running = false
}
