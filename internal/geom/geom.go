// Package geom provides window-local points and the precomputed unit circle
// shared by every ripple draw.
package geom

import "math"

// Point is a position in window-local coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Near reports whether q lies within eps of p along both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Circle is a unit circle sampled at a fixed number of segments. Points holds
// segments+1 vertices; the last repeats the first so the polyline closes.
type Circle struct {
	points []Point
}

// UnitCircle precomputes a closed unit circle with the given segment count.
func UnitCircle(segments int) *Circle {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return &Circle{points: pts}
}

// Segments returns the number of polyline segments in the outline.
func (c *Circle) Segments() int {
	return len(c.points) - 1
}

// Points returns the cached unit vertices. Callers must not modify them.
func (c *Circle) Points() []Point {
	return c.points
}

// Transform scales the unit circle by radius, translates it to center and
// writes the result into dst, reusing its backing array when large enough.
func (c *Circle) Transform(dst []Point, center Point, radius float64) []Point {
	dst = dst[:0]
	for _, u := range c.points {
		dst = append(dst, Point{X: center.X + u.X*radius, Y: center.Y + u.Y*radius})
	}
	return dst
}
