package dot

import (
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

func TestToDOTStructure(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameIntegrated)
	if !ok {
		t.Fatal("integrated fixture missing")
	}

	src := ToDOT(ds, geom.Square(400), render.Style{}, Options{})

	for _, want := range []string{
		"digraph network {",
		"layout=neato",
		`outputorder="edgesfirst"`,
		"shape=circle",
		"width=0.194",
		`edge [color="#2E86AB59", penwidth=1.5`,
		"1 -> 2;",
		"3 -> 1;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in:\n%s", want, src)
		}
	}

	if got := strings.Count(src, " -> "); got != 10 {
		t.Errorf("edge count = %d, want 10", got)
	}
	if got := strings.Count(src, "pos="); got != 6 {
		t.Errorf("pinned node count = %d, want 6", got)
	}
}

func TestToDOTPinsPositions(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameIntegrated)
	if !ok {
		t.Fatal("integrated fixture missing")
	}

	src := ToDOT(ds, geom.Square(400), render.Style{}, Options{})

	// Node 1 sits at (0.50, 0.08): x = 200pt, y flipped to 368pt.
	if !strings.Contains(src, `1 [pos="2.778,5.111!"]`) {
		t.Errorf("node 1 not pinned where expected:\n%s", src)
	}
}

func TestToDOTSkipsDanglingEdges(t *testing.T) {
	ds := graph.Dataset{
		Name: "partial",
		Nodes: []graph.Node{
			{ID: 1, Position: geom.Point{X: 0.2, Y: 0.2}},
			{ID: 2, Position: geom.Point{X: 0.8, Y: 0.8}},
		},
		Edges: []graph.Edge{
			{ID: "a", Source: 1, Target: 2},
			{ID: "b", Source: 1, Target: 99},
			{ID: "c", Source: 99, Target: 2},
		},
	}

	src := ToDOT(ds, geom.Square(100), render.Style{}, Options{})

	if !strings.Contains(src, "1 -> 2;") {
		t.Error("missing resolvable edge")
	}
	if strings.Contains(src, "99") {
		t.Errorf("dangling endpoint leaked into DOT:\n%s", src)
	}
	if got := strings.Count(src, " -> "); got != 1 {
		t.Errorf("edge count = %d, want 1", got)
	}
}

func TestToDOTLabels(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameIntegrated)
	if !ok {
		t.Fatal("integrated fixture missing")
	}

	plain := ToDOT(ds, geom.Square(400), render.Style{}, Options{})
	if strings.Contains(plain, "xlabel") {
		t.Error("labels emitted without option")
	}

	labeled := ToDOT(ds, geom.Square(400), render.Style{}, Options{Labels: true})
	if !strings.Contains(labeled, `xlabel="Thalamus"`) {
		t.Error("missing Thalamus xlabel")
	}
}

func TestToDOTTitle(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameModular)
	if !ok {
		t.Fatal("modular fixture missing")
	}

	src := ToDOT(ds, geom.Square(400), render.Style{Title: "Modular network"}, Options{})
	if !strings.Contains(src, `label="Modular network", labelloc="t"`) {
		t.Errorf("missing graph title:\n%s", src)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="431pt" height="431pt" viewBox="0.00 0.00 431.00 431.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 431.00 431.00" width="431" height="431"`) {
		t.Errorf("root element not normalized:\n%s", out)
	}
	if strings.Contains(out, "431pt") {
		t.Error("pt dimensions survived normalization")
	}
}
