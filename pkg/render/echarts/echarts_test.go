package echarts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

func TestWriteIntegrated(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameIntegrated)
	if !ok {
		t.Fatal("integrated fixture missing")
	}

	var buf bytes.Buffer
	if err := Write(ds, geom.Square(800), render.Style{}, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<html>",
		"echarts",
		`"layout":"none"`,
		"Thalamus",
		"Prefrontal",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if got := strings.Count(html, `"source":`); got != 10 {
		t.Errorf("link count = %d, want 10", got)
	}
}

func TestWriteSkipsDanglingEdges(t *testing.T) {
	ds := graph.Dataset{
		Name: "partial",
		Nodes: []graph.Node{
			{ID: 1, Position: geom.Point{X: 0.2, Y: 0.2}, Label: "A"},
			{ID: 2, Position: geom.Point{X: 0.8, Y: 0.8}, Label: "B"},
		},
		Edges: []graph.Edge{
			{ID: "a", Source: 1, Target: 2},
			{ID: "b", Source: 1, Target: 99},
		},
	}

	var buf bytes.Buffer
	if err := Write(ds, geom.Square(400), render.Style{}, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	html := buf.String()

	if got := strings.Count(html, `"source":`); got != 1 {
		t.Errorf("link count = %d, want 1", got)
	}
}

func TestWriteTitleFallsBackToName(t *testing.T) {
	ds, ok := graph.Builtin(graph.NameModular)
	if !ok {
		t.Fatal("modular fixture missing")
	}

	var buf bytes.Buffer
	if err := Write(ds, geom.Square(400), render.Style{}, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "modular") {
		t.Error("dataset name not used as title")
	}

	buf.Reset()
	if err := Write(ds, geom.Square(400), render.Style{Title: "Three islands"}, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "Three islands") {
		t.Error("explicit title not rendered")
	}
}

func TestNodeNames(t *testing.T) {
	ds := graph.Dataset{
		Nodes: []graph.Node{
			{ID: 1, Label: "Cortex"},
			{ID: 2, Label: "Cortex"},
			{ID: 3, Label: "Thalamus"},
			{ID: 4},
		},
	}

	names := nodeNames(ds)

	want := map[int]string{
		1: "Cortex (1)",
		2: "Cortex (2)",
		3: "Thalamus",
		4: "4",
	}
	for id, w := range want {
		if names[id] != w {
			t.Errorf("names[%d] = %q, want %q", id, names[id], w)
		}
	}
}
