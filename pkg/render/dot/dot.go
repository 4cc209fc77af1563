package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// Graphviz pos units are inches, 72 points each.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Labels attaches each node's label as an external label beside its
	// disk. When false, nodes are anonymous filled circles.
	Labels bool
}

// ToDOT converts a dataset to Graphviz DOT source with every node pinned to
// its stored position. The neato engine honors the pins instead of computing
// a layout, so the diagram matches the native renderers geometrically. Edges
// whose endpoints are missing from the dataset are skipped. The resulting
// string can be rendered with [RenderSVG] or [RenderPNG], or fed to external
// Graphviz tooling.
func ToDOT(ds graph.Dataset, size geom.Size, style render.Style, opts Options) string {
	st := style.Resolved()
	side := size.Min()

	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  graph [layout=neato, bgcolor=\"transparent\", outputorder=\"edgesfirst\"];\n")
	if st.Title != "" {
		fmt.Fprintf(&buf, "  graph [label=%q, labelloc=\"t\", fontsize=16];\n", st.Title)
	}
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, label=\"\", fixedsize=true, width=%.3f, color=%q, fillcolor=%q, fontsize=10];\n",
		2*st.NodeRadius/pointsPerInch, st.Color, st.Color)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=%.1f, arrowsize=0.6];\n",
		st.Color+alphaHex(st.EdgeOpacity), st.StrokeWidth)
	buf.WriteString("\n")

	for _, n := range ds.Nodes {
		p := geom.Scale(n.Position, side)
		// DOT's y axis points up, the dataset's points down.
		fmt.Fprintf(&buf, "  %d [pos=\"%.3f,%.3f!\"", n.ID, p.X/pointsPerInch, (side-p.Y)/pointsPerInch)
		if opts.Labels && n.Label != "" {
			fmt.Fprintf(&buf, ", xlabel=%q", n.Label)
		}
		buf.WriteString("];\n")
	}

	buf.WriteString("\n")
	idx := ds.NodeIndex()
	for _, e := range ds.Edges {
		_, okS := idx[e.Source]
		_, okD := idx[e.Target]
		if !okS || !okD {
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func alphaHex(opacity float64) string {
	opacity = min(max(opacity, 0), 1)
	return fmt.Sprintf("%02X", uint8(opacity*255+0.5))
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders DOT source to PNG using the embedded Graphviz engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG root element so the viewBox
// starts at the origin and the width and height are plain pixel values.
// Graphviz emits pt-suffixed dimensions that complicate embedding.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
