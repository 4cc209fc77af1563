// Package pkg provides the core libraries for IIT network visualization.
//
// # Overview
//
// The project renders the small curated brain-network datasets used to
// illustrate Integrated Information Theory: an integrated thalamocortical
// web, an insulated modular network, and a split-brain pair whose callosal
// bridges can be severed. The pkg directory is organized into five areas:
//
//  1. [graph] - Curated datasets and connectivity analysis
//  2. [render] - Drawing pipeline (dataset → drawing ops → SVG/PNG/JSON)
//  3. [scene] - Multi-panel compositions (comparison, split-brain)
//  4. [pipeline] - Orchestration (load → draw → render) shared by all hosts
//  5. [theme] - TOML theme files for canvas and style defaults
//
// # Architecture
//
// The typical data flow:
//
//	Builtin fixture / JSON file
//	         ↓
//	    [graph] package (dataset + validation)
//	         ↓
//	    [render] package (drawing command list)
//	         ↓
//	    [render/sink] package (SVG, PNG, JSON)
//	         ↓
//	    files on disk
//
// The [render/dot] and [render/echarts] packages bypass the drawing list
// and translate datasets straight into Graphviz DOT and Apache ECharts
// documents.
//
// # Quick Start
//
// Load a dataset and render it to SVG:
//
//	import (
//	    "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
//	    "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
//	    "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
//	    "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/sink"
//	)
//
//	// 1. Load the dataset
//	ds := graph.Integrated()
//
//	// 2. Compute the drawing
//	d := render.Draw(ds, geom.Square(800), render.Style{}, render.WithLabels())
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(d)
//
// Or run the whole pipeline in one call:
//
//	result, err := pipeline.Run(ctx, pipeline.Options{
//	    Dataset: graph.NameIntegrated,
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// ## Domain
//
// [graph] - Dataset, node, and edge types plus the three curated fixtures.
// Includes connectivity analysis (components, reciprocal pairs) used to
// describe datasets, never to lay them out: positions are curated data.
//
// [geom] - Points, sizes, and the normalized-to-surface coordinate mapping
// shared by every renderer.
//
// ## Rendering
//
// [render] - Converts a dataset into an ordered drawing command list
// (lines, disks, text). All geometry and z-ordering decisions happen here
// so the sinks stay dumb.
//
// [render/sink] - Serializes a drawing to SVG, PNG (via gg), or a JSON
// command list that round-trips through [render/sink.ParseJSON].
//
// [render/dot] - Graphviz DOT generation with pinned neato positions, plus
// SVG/PNG rendering through the embedded Graphviz runtime.
//
// [render/echarts] - Interactive HTML documents via go-echarts.
//
// [scene] - Composes several datasets into one multi-panel figure: the
// integrated-vs-modular comparison and the split-brain before/after view,
// with captions and a curated reading list.
//
// ## Infrastructure
//
// [pipeline] - The load → draw → render pipeline used by the CLI. One
// options struct, validated once, drives every output format.
//
// [theme] - TOML theme loading with defaults, used to set canvas size,
// base style, and per-panel accent colors.
//
// [io] - JSON import/export of datasets for round-trip editing.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Pipeline stage hooks for host instrumentation.
//
// # Common Workflows
//
// Toggle the split-brain dataset:
//
//	intact := graph.SplitBrain(false)  // one component, 12 edges
//	severed := graph.SplitBrain(true)  // two components, 8 edges
//
// Compose the comparison scene:
//
//	s := scene.Comparison()
//	svg := scene.ComposeSVG(s, geom.Square(300), scene.WithLabels())
//
// Export a dataset, edit it, and re-import:
//
//	io.ExportJSON(graph.Modular(), "modular.json")
//	ds, _ := io.ImportJSON("modular.json")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/render/...   # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph
// [geom]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom
// [render]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/sink
// [render/dot]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/dot
// [render/echarts]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/echarts
// [scene]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline
// [theme]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/theme
// [io]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/io
// [errors]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/errors
// [observability]: https://pkg.go.dev/github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/observability
package pkg
