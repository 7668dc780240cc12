// Package ripple implements the expanding rings spawned on clicks.
package ripple

import (
	"image/color"
	"slices"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/geom"
)

// Ripple is one expanding, fading ring.
type Ripple struct {
	Center geom.Point
	Radius float64
	Life   float64
	Color  color.NRGBA
}

// Alpha returns the ring opacity for the remaining life.
func (r Ripple) Alpha() uint8 {
	ratio := r.Life / config.RippleMaxLife
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 255
	}
	return uint8(255 * ratio)
}

// System owns every live ripple. Primary spawns alternate between the main
// and aux colors; secondary spawns always use the main color and leave the
// alternation alone.
type System struct {
	ripples []Ripple
	useAux  bool
}

// New creates an empty ripple system.
func New() *System {
	return &System{}
}

// SpawnPrimary adds a ripple for a left-button press.
func (s *System) SpawnPrimary(p geom.Point) {
	c := config.ColorMain
	if s.useAux {
		c = config.ColorAux
	}
	s.useAux = !s.useAux
	s.spawn(p, c)
}

// SpawnSecondary adds a ripple for a right-button press.
func (s *System) SpawnSecondary(p geom.Point) {
	s.spawn(p, config.ColorMain)
}

func (s *System) spawn(p geom.Point, c color.NRGBA) {
	s.ripples = append(s.ripples, Ripple{
		Center: p,
		Life:   config.RippleMaxLife,
		Color:  c,
	})
}

// Advance grows and fades every ripple by one tick and drops the expired
// ones. It reports whether any ripple existed before the step, which is
// also when the frame needs repainting.
func (s *System) Advance() bool {
	if len(s.ripples) == 0 {
		return false
	}
	for i := range s.ripples {
		s.ripples[i].Radius += config.RippleGrowth
		s.ripples[i].Life--
	}
	s.ripples = slices.DeleteFunc(s.ripples, func(r Ripple) bool {
		return r.Life <= 0
	})
	return true
}

// Len returns the number of live ripples.
func (s *System) Len() int {
	return len(s.ripples)
}

// All returns the live ripples. The slice is only valid until the next
// mutating call and must not be modified.
func (s *System) All() []Ripple {
	return s.ripples
}

// Cap returns the reserved ripple capacity.
func (s *System) Cap() int {
	return cap(s.ripples)
}

// Compact releases reserved capacity once it exceeds factor times the live
// count. It reports whether a reallocation happened.
func (s *System) Compact(factor int) bool {
	if cap(s.ripples) <= len(s.ripples)*factor {
		return false
	}
	if len(s.ripples) == 0 {
		s.ripples = nil
		return true
	}
	ripples := make([]Ripple, len(s.ripples))
	copy(ripples, s.ripples)
	s.ripples = ripples
	return true
}
