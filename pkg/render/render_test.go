package render

import (
	"reflect"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// twoNodes is a minimal dataset with one edge between opposite corners.
func twoNodes() graph.Dataset {
	return graph.Dataset{
		Nodes: []graph.Node{
			{ID: 1, Position: geom.Point{X: 0, Y: 0}, Label: "a"},
			{ID: 2, Position: geom.Point{X: 1, Y: 1}, Label: "b"},
		},
		Edges: []graph.Edge{{ID: "e1", Source: 1, Target: 2}},
	}
}

func TestDrawCounts(t *testing.T) {
	tests := []struct {
		name      string
		build     func() graph.Dataset
		wantLines int
		wantDisks int
	}{
		{"Empty", func() graph.Dataset { return graph.Dataset{} }, 0, 0},
		{"NodesOnly", func() graph.Dataset {
			return graph.Dataset{Nodes: []graph.Node{{ID: 1}, {ID: 2}, {ID: 3}}}
		}, 0, 3},
		{"EdgesOnly", func() graph.Dataset {
			// Every edge dangles when there are no nodes at all.
			return graph.Dataset{Edges: []graph.Edge{graph.NewEdge(1, 2)}}
		}, 0, 0},
		{"Pair", twoNodes, 1, 2},
		{"Integrated", graph.Integrated, 10, 6},
		{"Modular", graph.Modular, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draw(tt.build(), geom.Size{Width: 400, Height: 400}, Style{})
			if got := len(d.Lines()); got != tt.wantLines {
				t.Errorf("lines = %d, want %d", got, tt.wantLines)
			}
			if got := len(d.Disks()); got != tt.wantDisks {
				t.Errorf("disks = %d, want %d", got, tt.wantDisks)
			}
		})
	}
}

func TestDrawOrder(t *testing.T) {
	d := Draw(graph.Integrated(), geom.Size{Width: 300, Height: 300}, Style{})

	// Every line op must precede every disk op: nodes paint over edges.
	lastLine, firstDisk := -1, -1
	for i, op := range d.Ops {
		switch op.Kind {
		case OpLine:
			lastLine = i
		case OpDisk:
			if firstDisk == -1 {
				firstDisk = i
			}
		}
	}
	if lastLine == -1 || firstDisk == -1 {
		t.Fatal("expected both lines and disks")
	}
	if lastLine > firstDisk {
		t.Errorf("line op at %d after disk op at %d, edges must be drawn first", lastLine, firstDisk)
	}
}

func TestDrawIdempotent(t *testing.T) {
	ds := graph.Integrated()
	size := geom.Size{Width: 512, Height: 512}
	style := Style{Color: "#AA3377", Title: "repeatable"}

	first := Draw(ds, size, style)
	second := Draw(ds, size, style)
	if !reflect.DeepEqual(first, second) {
		t.Error("two draws of the same input differ")
	}
}

func TestDrawDanglingEdge(t *testing.T) {
	ds := twoNodes()
	ds.Edges = append(ds.Edges, graph.Edge{ID: "dangler", Source: 1, Target: 99})

	d := Draw(ds, geom.Size{Width: 200, Height: 200}, Style{})

	// Both nodes and the one valid edge survive; exactly the dangler is
	// dropped, with no error anywhere in the path.
	if got := len(d.Disks()); got != 2 {
		t.Errorf("disks = %d, want 2", got)
	}
	lines := d.Lines()
	if got := len(lines); got != 1 {
		t.Fatalf("lines = %d, want 1", got)
	}
	if lines[0].Source != 1 || lines[0].Target != 2 {
		t.Errorf("surviving line = %d→%d, want 1→2", lines[0].Source, lines[0].Target)
	}
}

func TestDrawSquareSurface(t *testing.T) {
	// A rectangular surface resolves to its smaller side.
	d := Draw(twoNodes(), geom.Size{Width: 800, Height: 500}, Style{})
	if d.Width != 500 || d.Height != 500 {
		t.Errorf("surface = %vx%v, want 500x500", d.Width, d.Height)
	}

	// The far corner node lands on (side, side).
	disks := d.Disks()
	far := disks[1]
	if far.X != 500 || far.Y != 500 {
		t.Errorf("corner node at (%v, %v), want (500, 500)", far.X, far.Y)
	}
}

func TestDrawStretch(t *testing.T) {
	ds := graph.Dataset{Nodes: []graph.Node{
		{ID: 1, Position: geom.Point{X: 1, Y: 0}},
		{ID: 2, Position: geom.Point{X: 0, Y: 1}},
	}}
	d := Draw(ds, geom.Size{Width: 800, Height: 600}, Style{}, WithStretch())

	if d.Width != 800 || d.Height != 600 {
		t.Fatalf("surface = %vx%v, want 800x600", d.Width, d.Height)
	}
	disks := d.Disks()
	if disks[0].X != 800 || disks[0].Y != 0 {
		t.Errorf("(1,0) scaled to (%v, %v), want (800, 0)", disks[0].X, disks[0].Y)
	}
	if disks[1].X != 0 || disks[1].Y != 600 {
		t.Errorf("(0,1) scaled to (%v, %v), want (0, 600)", disks[1].X, disks[1].Y)
	}
}

func TestDrawLabels(t *testing.T) {
	ds := twoNodes()
	ds.Nodes = append(ds.Nodes, graph.Node{ID: 3, Position: geom.Point{X: 0.5, Y: 0.5}}) // no label

	plain := Draw(ds, geom.Size{Width: 100, Height: 100}, Style{})
	if got := len(plain.Texts()); got != 0 {
		t.Errorf("labels without WithLabels = %d, want 0", got)
	}

	labeled := Draw(ds, geom.Size{Width: 100, Height: 100}, Style{}, WithLabels())
	texts := labeled.Texts()
	if got := len(texts); got != 2 {
		t.Fatalf("labels = %d, want 2 (unlabeled node skipped)", got)
	}
	if texts[0].Text != "a" || texts[1].Text != "b" {
		t.Errorf("labels = %q, %q, want a, b", texts[0].Text, texts[1].Text)
	}

	// Text ops come after all disks.
	firstText, lastDisk := -1, -1
	for i, op := range labeled.Ops {
		switch op.Kind {
		case OpDisk:
			lastDisk = i
		case OpText:
			if firstText == -1 {
				firstText = i
			}
		}
	}
	if firstText < lastDisk {
		t.Error("text op before the last disk op")
	}
}

func TestStyleResolved(t *testing.T) {
	st := Style{}.Resolved()
	if st.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", st.Color, DefaultColor)
	}
	if st.NodeRadius != DefaultNodeRadius {
		t.Errorf("NodeRadius = %v, want %v", st.NodeRadius, DefaultNodeRadius)
	}
	if st.EdgeOpacity >= st.NodeOpacity {
		t.Errorf("edge opacity %v not below node opacity %v", st.EdgeOpacity, st.NodeOpacity)
	}

	custom := Style{Color: "#123456", NodeRadius: 12}.Resolved()
	if custom.Color != "#123456" || custom.NodeRadius != 12 {
		t.Error("Resolved overwrote explicit values")
	}
}

func TestDrawAppliesStyle(t *testing.T) {
	d := Draw(twoNodes(), geom.Size{Width: 100, Height: 100}, Style{
		NodeRadius:  10,
		EdgeOpacity: 0.2,
	})
	if got := d.Disks()[0].R; got != 10 {
		t.Errorf("disk radius = %v, want 10", got)
	}
	if got := d.Lines()[0].Opacity; got != 0.2 {
		t.Errorf("line opacity = %v, want 0.2", got)
	}
	if got := d.Disks()[0].Opacity; got != DefaultNodeOpacity {
		t.Errorf("disk opacity = %v, want %v", got, DefaultNodeOpacity)
	}
}
