// Package render turns the trail and ripple state into stroke commands on a
// Surface. It keeps no state between frames beyond a scratch buffer.
package render

import (
	"image/color"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/geom"
	"github.com/iburimskiy/cursor-overlay/internal/ripple"
	"github.com/iburimskiy/cursor-overlay/internal/trail"
)

// Surface is the display the overlay draws on.
type Surface interface {
	// Clear fills the frame with fully transparent pixels.
	Clear()
	StrokeLine(a, b geom.Point, c color.NRGBA)
	StrokePolyline(pts []geom.Point, c color.NRGBA)
	// Present makes the frame visible.
	Present()
}

// Trail is the read side of trail.Buffer, indexed newest-first.
type Trail interface {
	Len() int
	At(i int) trail.Node
}

// Renderer draws ripples and the trail.
type Renderer struct {
	circle  *geom.Circle
	scratch []geom.Point
}

// New creates a renderer drawing ripple outlines from circle.
func New(circle *geom.Circle) *Renderer {
	return &Renderer{
		circle:  circle,
		scratch: make([]geom.Point, 0, len(circle.Points())),
	}
}

// Draw emits the ripples first and the trail on top. It does not clear or
// present.
func (r *Renderer) Draw(s Surface, t Trail, ripples []ripple.Ripple) {
	for _, rp := range ripples {
		r.drawRipple(s, rp)
	}
	drawTrail(s, t)
}

func (r *Renderer) drawRipple(s Surface, rp ripple.Ripple) {
	c := rp.Color
	c.A = rp.Alpha()
	for ring := 0; ring < 3; ring++ {
		radius := rp.Radius - float64(ring)*config.RippleInset
		if radius <= config.RippleMinRadius {
			return
		}
		r.scratch = r.circle.Transform(r.scratch, rp.Center, radius)
		s.StrokePolyline(r.scratch, c)
	}
}

func drawTrail(s Surface, t Trail) {
	n := t.Len()
	if n < 2 {
		return
	}
	offset := geom.Pt(config.TrailThickStep, config.TrailThickStep)
	for i := 0; i < n-1; i++ {
		f := float64(i) / float64(n-1)
		c := Lerp(config.ColorMain, config.ColorAux, f)
		c.A = uint8(255 * (1 - f))

		a, b := t.At(i).Pos, t.At(i+1).Pos
		s.StrokeLine(a, b, c)
		s.StrokeLine(a.Add(offset), b.Add(offset), c)
	}
}

// Lerp interpolates linearly between c1 and c2, truncating each channel.
// f is clamped to [0, 1].
func Lerp(c1, c2 color.NRGBA, f float64) color.NRGBA {
	f = min(max(f, 0), 1)
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*f)
	}
	return color.NRGBA{
		R: ch(c1.R, c2.R),
		G: ch(c1.G, c2.G),
		B: ch(c1.B, c2.B),
		A: ch(c1.A, c2.A),
	}
}
