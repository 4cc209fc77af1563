// Package sink provides output format renderers for network drawings.
//
// # Overview
//
// A "sink" serializes a computed [render.Drawing] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics via [RenderSVG]
//   - PNG: Raster image output via [RenderPNG]
//   - JSON: Drawing command export for external tools via [RenderJSON]
//
// All sinks replay the drawing's op sequence in order, so the layering
// contract of [render.Draw] (edges below, disks above, labels on top)
// holds in every format.
//
// Basic usage:
//
//	d := render.Draw(ds, geom.Size{Width: 800, Height: 800}, render.Style{})
//	svg := sink.RenderSVG(d, sink.WithBackground("#FFFFFF"))
//
// PNG rasterization supersamples by a configurable factor (default 2) for
// crisp output on high-density displays:
//
//	png, err := sink.RenderPNG(d, sink.WithScale(3))
//
// JSON export is lossless: [ParseJSON] reconstructs the drawing, enabling
// round-trip rendering and caching of computed scenes.
package sink
