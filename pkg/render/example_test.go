package render_test

import (
	"fmt"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// A Drawing is an ordered command list: edge lines first, node disks on
// top of them.
func ExampleDraw() {
	d := render.Draw(graph.Integrated(), geom.Size{Width: 400, Height: 400}, render.Style{})
	fmt.Printf("%d lines, %d disks\n", len(d.Lines()), len(d.Disks()))
	fmt.Printf("first op is a line: %v\n", d.Ops[0].Kind == render.OpLine)
	// Output:
	// 10 lines, 6 disks
	// first op is a line: true
}

// An edge that references a missing node is skipped; everything else
// still renders.
func ExampleDraw_danglingEdge() {
	ds := graph.Dataset{
		Nodes: []graph.Node{
			{ID: 1, Position: geom.Point{X: 0.2, Y: 0.5}},
			{ID: 2, Position: geom.Point{X: 0.8, Y: 0.5}},
		},
		Edges: []graph.Edge{
			graph.NewEdge(1, 2),
			graph.NewEdge(2, 7), // node 7 does not exist
		},
	}
	d := render.Draw(ds, geom.Size{Width: 100, Height: 100}, render.Style{})
	fmt.Printf("%d of %d edges drawn, %d nodes drawn\n",
		len(d.Lines()), len(ds.Edges), len(d.Disks()))
	// Output: 1 of 2 edges drawn, 2 nodes drawn
}
