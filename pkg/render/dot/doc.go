// Package dot renders datasets as Graphviz node-link diagrams.
//
// # Overview
//
// This package produces DOT source with every node pinned to its stored
// normalized position, scaled onto the target surface. The neato engine
// honors the pins rather than computing its own layout, so a Graphviz
// render is geometrically interchangeable with the native SVG and PNG
// sinks. Edges are drawn below nodes (outputorder=edgesfirst) and at
// reduced opacity, matching the drawing contract of [render.Draw].
//
// # Usage
//
// Convert a dataset to DOT, then render it in process:
//
//	src := dot.ToDOT(ds, geom.Square(800), render.Style{}, dot.Options{Labels: true})
//	svg, err := dot.RenderSVG(ctx, src)
//	png, err := dot.RenderPNG(ctx, src)
//
// The DOT source is also valid input for external Graphviz tooling:
//
//	neato -Tsvg network.dot > network.svg
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], a WebAssembly build of
// Graphviz, so no system Graphviz installation is required.
package dot
