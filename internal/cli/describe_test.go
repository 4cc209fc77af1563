package cli

import (
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

func TestComponentLabels(t *testing.T) {
	ds := graph.Modular()
	comps := ds.Components()
	if len(comps) != 3 {
		t.Fatalf("modular components = %d, want 3", len(comps))
	}

	if got := componentLabels(ds, comps[0]); got != "A1, A2, A3" {
		t.Errorf("first component = %q, want %q", got, "A1, A2, A3")
	}
}

func TestComponentLabelsFallsBackToIDs(t *testing.T) {
	ds := graph.Dataset{
		Name: "bare",
		Nodes: []graph.Node{
			{ID: 1, Position: geom.Point{X: 0.2, Y: 0.5}},
			{ID: 2, Position: geom.Point{X: 0.8, Y: 0.5}, Label: "Hub"},
		},
		Edges: []graph.Edge{graph.NewEdge(1, 2)},
	}

	comps := ds.Components()
	if len(comps) != 1 {
		t.Fatalf("components = %d, want 1", len(comps))
	}
	if got := componentLabels(ds, comps[0]); got != "1, Hub" {
		t.Errorf("labels = %q, want %q", got, "1, Hub")
	}
}

func TestReciprocalLabel(t *testing.T) {
	ds := graph.Integrated()
	pairs := ds.ReciprocalPairs()
	if len(pairs) == 0 {
		t.Fatal("integrated dataset should have a reciprocal pair")
	}

	got := reciprocalLabel(ds, pairs[0])
	if !strings.Contains(got, "↔") {
		t.Errorf("reciprocal label = %q, want it to contain ↔", got)
	}

	// Unknown IDs fall back to numbers.
	if got := reciprocalLabel(graph.Dataset{}, [2]int{3, 7}); got != "3 ↔ 7" {
		t.Errorf("fallback label = %q, want %q", got, "3 ↔ 7")
	}
}

func TestNodeTable(t *testing.T) {
	out := nodeTable(graph.Integrated())

	for _, label := range []string{"Prefrontal", "Thalamus"} {
		if !strings.Contains(out, label) {
			t.Errorf("node table is missing label %q", label)
		}
	}
	if !strings.Contains(out, "0.50") {
		t.Error("node table should include normalized coordinates")
	}
}
