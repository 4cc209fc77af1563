// Package geom provides the normalized coordinate space shared by datasets
// and renderers.
//
// # Coordinate Space
//
// Node positions are stored as normalized coordinates in the unit square:
// both axes range over [0, 1], the origin is the top-left corner, x grows
// rightward and y grows downward. This matches common 2D drawing surfaces
// (SVG, raster canvases), so scaled coordinates can be handed to a sink
// without axis flipping.
//
// Scaling is a pure multiplication. Out-of-range inputs are not clamped:
// a point outside the unit square scales to a point outside the surface,
// which simply draws off-screen. Callers that care should validate datasets
// up front (see the graph package).
package geom

import "math"

// Point is a position in 2D space. Whether the coordinates are normalized
// or absolute depends on context: dataset positions are normalized to
// [0, 1], scaled positions are in surface units (pixels, points).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the dimensions of a drawing surface in surface units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Square returns a Size with both dimensions set to side.
func Square(side float64) Size {
	return Size{Width: side, Height: side}
}

// Min returns the smaller of the two dimensions. Renderers targeting a
// square region use this as the side length.
func (s Size) Min() float64 {
	return math.Min(s.Width, s.Height)
}

// IsSquare reports whether both dimensions are equal.
func (s Size) IsSquare() bool {
	return s.Width == s.Height
}

// Scale maps a normalized point onto a square surface with the given side
// length:
//
//	Scale(Point{0.5, 0.25}, 100) == Point{50, 25}
//
// The mapping is exact multiplication with no rounding and no clamping.
// Normalized inputs in [0, 1] land in [0, side].
func Scale(p Point, side float64) Point {
	return Point{X: p.X * side, Y: p.Y * side}
}

// ScaleTo maps a normalized point onto a rectangular surface, scaling each
// axis independently. The unit square corners map exactly onto the surface
// corners: (1, 0) becomes (size.Width, 0) and (0, 1) becomes
// (0, size.Height).
func ScaleTo(p Point, size Size) Point {
	return Point{X: p.X * size.Width, Y: p.Y * size.Height}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}
