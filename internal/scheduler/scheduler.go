// Package scheduler runs the per-tick state machine: it feeds input into the
// trail and ripples, decides whether the frame must be repainted, and picks
// how long the loop sleeps before the next tick.
//
// With vsync off nothing else paces the loop, so the sleep tiers cap it at
// roughly 80 Hz while something is animating, 30 Hz while idle and 10 Hz
// while hidden.
package scheduler

import (
	"time"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/geom"
	"github.com/iburimskiy/cursor-overlay/internal/input"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
	"github.com/iburimskiy/cursor-overlay/internal/render"
	"github.com/iburimskiy/cursor-overlay/internal/ripple"
	"github.com/iburimskiy/cursor-overlay/internal/trail"
)

// Action is what the display has to do for a tick.
type Action int

const (
	// ActionNone leaves the last presented frame on screen.
	ActionNone Action = iota
	// ActionDraw clears, renders the current state and presents.
	ActionDraw
	// ActionBlank presents an empty, fully transparent frame.
	ActionBlank
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDraw:
		return "draw"
	case ActionBlank:
		return "blank"
	}
	return "unknown"
}

// Decision is the outcome of one tick.
type Decision struct {
	Action Action
	Sleep  time.Duration
	// Spawned counts ripples created this tick.
	Spawned int
}

// Scheduler owns the animation state. It is not safe for concurrent use;
// every call must come from the loop goroutine.
type Scheduler struct {
	trail    *trail.Buffer
	ripples  *ripple.System
	edges    input.EdgeDetector
	renderer *render.Renderer

	hidden           bool
	hiddenTicks      int
	maintenanceTicks int
}

// New creates a scheduler with empty trail and ripple state.
func New() *Scheduler {
	return &Scheduler{
		trail:    trail.New(config.MaxTrail, config.MaxTrailAgeMs),
		ripples:  ripple.New(),
		renderer: render.New(geom.UnitCircle(config.CircleSegments)),
	}
}

// Trail exposes the trail for inspection.
func (s *Scheduler) Trail() *trail.Buffer {
	return s.trail
}

// Ripples exposes the ripple system for inspection.
func (s *Scheduler) Ripples() *ripple.System {
	return s.ripples
}

// Tick advances the animation by one step using in and returns what the
// display should do and how long to sleep afterwards.
//
// Input is sampled and press edges are tracked even while hidden, so a
// button held across a show/hide toggle does not fire a new edge.
func (s *Scheduler) Tick(st *State, in input.Sample) Decision {
	edges := s.edges.Update(in.Buttons, in.Pressed)

	active := s.trail.Observe(in.Pos, in.Now)

	var d Decision
	if edges.Left {
		s.ripples.SpawnPrimary(in.Pos)
		d.Spawned++
	}
	if edges.Right {
		s.ripples.SpawnSecondary(in.Pos)
		d.Spawned++
	}
	if s.ripples.Advance() {
		active = true
	}

	if !st.Visible {
		if !s.hidden {
			s.hidden = true
			s.hiddenTicks = 0
		}
		if s.hiddenTicks == 0 {
			d.Action = ActionBlank
		}
		s.hiddenTicks = (s.hiddenTicks + 1) % config.HiddenBlankEvery
		d.Sleep = config.HiddenSleep
		return d
	}
	s.hidden = false

	if active {
		d.Action = ActionDraw
		d.Sleep = config.ActiveSleep
	} else {
		d.Sleep = config.IdleSleep
	}

	s.maintenanceTicks++
	if s.maintenanceTicks >= config.MaintenanceEvery {
		s.maintenanceTicks = 0
		s.Maintain()
	}
	return d
}

// Maintain releases slack capacity left by bursts of ripples and trail
// evictions. Element order and values are unchanged.
func (s *Scheduler) Maintain() {
	released := s.ripples.Compact(config.RippleSlackFactor)
	s.trail.Compact()
	logging.Logger().Debug("maintenance",
		"ripples", s.ripples.Len(),
		"ripple_cap", s.ripples.Cap(),
		"ripples_released", released,
		"trail", s.trail.Len(),
	)
}

// Present carries out d on surf.
func (s *Scheduler) Present(d Decision, surf render.Surface) {
	switch d.Action {
	case ActionDraw:
		surf.Clear()
		s.renderer.Draw(surf, s.trail, s.ripples.All())
		surf.Present()
	case ActionBlank:
		surf.Clear()
		surf.Present()
	}
}
