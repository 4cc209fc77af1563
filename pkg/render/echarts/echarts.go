// Package echarts renders datasets as self-contained interactive HTML
// documents built on Apache ECharts.
//
// The graph series uses layout "none" with every node fixed at its scaled
// position, so the browser view matches the static renderers. Nodes stay
// draggable and the canvas pans and zooms, which makes this the format of
// choice for exploring a dataset by hand.
package echarts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// Write renders the dataset as an interactive HTML page. Edges with missing
// endpoints are skipped, matching [render.Draw].
func Write(ds graph.Dataset, size geom.Size, style render.Style, w io.Writer) error {
	st := style.Resolved()
	side := size.Min()
	names := nodeNames(ds)

	nodes := make([]opts.GraphNode, 0, len(ds.Nodes))
	for _, n := range ds.Nodes {
		p := geom.Scale(n.Position, side)
		nodes = append(nodes, opts.GraphNode{
			Name:       names[n.ID],
			X:          float32(p.X),
			Y:          float32(p.Y),
			Fixed:      opts.Bool(true),
			SymbolSize: float32(2 * st.NodeRadius),
		})
	}

	links := make([]opts.GraphLink, 0, len(ds.Edges))
	for _, e := range ds.Edges {
		src, okS := names[e.Source]
		dst, okD := names[e.Target]
		if !okS || !okD {
			continue
		}
		links = append(links, opts.GraphLink{Source: src, Target: dst})
	}

	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle(ds, st),
			Width:     fmt.Sprintf("%.0fpx", side),
			Height:    fmt.Sprintf("%.0fpx", side),
		}),
		charts.WithTitleOpts(opts.Title{Title: pageTitle(ds, st)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	g.AddSeries(
		"network",
		nodes,
		links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:    "none",
			Roam:      opts.Bool(true),
			Draggable: opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    st.Color,
			Position: "top",
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:   st.Color,
			Opacity: float32(st.NodeOpacity),
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color:     st.Color,
			Width:     float32(st.StrokeWidth),
			Opacity:   float32(st.EdgeOpacity),
			Curveness: 0.15,
		}),
	)

	page := components.NewPage()
	page.AddCharts(g)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render echarts page: %w", err)
	}
	return nil
}

func pageTitle(ds graph.Dataset, st render.Style) string {
	if st.Title != "" {
		return st.Title
	}
	return ds.Name
}

// nodeNames assigns a display name per node ID. ECharts links reference
// nodes by name, so names must be unique: a label shared by several nodes
// or left empty falls back to an ID-qualified form.
func nodeNames(ds graph.Dataset) map[int]string {
	seen := make(map[string]int, len(ds.Nodes))
	for _, n := range ds.Nodes {
		seen[n.Label]++
	}

	names := make(map[int]string, len(ds.Nodes))
	for _, n := range ds.Nodes {
		switch {
		case n.Label != "" && seen[n.Label] == 1:
			names[n.ID] = n.Label
		case n.Label != "":
			names[n.ID] = fmt.Sprintf("%s (%d)", n.Label, n.ID)
		default:
			names[n.ID] = strconv.Itoa(n.ID)
		}
	}
	return names
}
