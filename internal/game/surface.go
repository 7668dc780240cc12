package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cursor-overlay/internal/geom"
)

const strokeWidth = 1

// screenSurface draws onto the ebiten screen image. ebiten presents the
// screen after Draw returns, so Present has nothing to do.
type screenSurface struct {
	dst *ebiten.Image
}

func (s *screenSurface) Clear() {
	s.dst.Clear()
}

func (s *screenSurface) StrokeLine(a, b geom.Point, c color.NRGBA) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, c, false)
}

func (s *screenSurface) StrokePolyline(pts []geom.Point, c color.NRGBA) {
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1], pts[i], c)
	}
}

func (s *screenSurface) Present() {}
