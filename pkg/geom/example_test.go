package geom_test

import (
	"fmt"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
)

// Scaling maps normalized dataset coordinates onto a concrete surface.
func ExampleScale() {
	p := geom.Point{X: 0.5, Y: 0.25}
	scaled := geom.Scale(p, 400)
	fmt.Printf("(%.0f, %.0f)\n", scaled.X, scaled.Y)
	// Output: (200, 100)
}

// Rectangular surfaces scale each axis independently, so the unit square
// corners land exactly on the surface corners.
func ExampleScaleTo() {
	size := geom.Size{Width: 800, Height: 600}
	corner := geom.ScaleTo(geom.Point{X: 1, Y: 0}, size)
	fmt.Printf("(%.0f, %.0f)\n", corner.X, corner.Y)
	// Output: (800, 0)
}
