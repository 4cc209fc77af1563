// Package render turns network datasets into drawing command sequences.
//
// # Overview
//
// [Draw] is the whole contract: dataset in, ordered op list out. It owns
// the semantics every output format shares — coordinate scaling, edge
// resolution, z-order — while the sinks own the bytes:
//
//   - [sink]: SVG, PNG, and JSON from a Drawing
//   - [dot]: Graphviz source and rasterization, positions pinned
//   - [echarts]: self-contained interactive HTML
//
// # Contract
//
// Draw is a pure function. It keeps no state between calls, touches
// nothing global, and is deterministic: the same dataset, surface size,
// and style produce an identical Drawing every time, which the sinks turn
// into byte-identical artifacts. Rendering is safe to repeat and safe to
// run concurrently.
//
// The op order is the z-order. All edge lines come first, then all node
// disks, then optional labels, so nodes always paint over the edge layer
// and the layering can be asserted from the sequence alone.
//
// Malformed data degrades instead of failing: an edge referencing a
// missing node is skipped silently while everything else renders, and an
// out-of-range position draws off-surface. Draw never returns an error
// because it has none to return.
//
// # Surfaces
//
// By default Draw targets a square region with side min(width, height),
// preserving the dataset's aspect ratio inside any container.
// [WithStretch] instead scales each axis independently to fill a
// rectangular surface edge to edge.
//
// [sink]: github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/sink
// [dot]: github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/dot
// [echarts]: github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/echarts
package render
