package scene

import (
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

func TestComparison(t *testing.T) {
	s := Comparison()

	if len(s.Panels) != 2 {
		t.Fatalf("panel count = %d, want 2", len(s.Panels))
	}
	if s.Panels[0].Dataset.Name != graph.NameIntegrated {
		t.Errorf("first panel dataset = %q, want %q", s.Panels[0].Dataset.Name, graph.NameIntegrated)
	}
	if s.Panels[1].Dataset.Name != graph.NameModular {
		t.Errorf("second panel dataset = %q, want %q", s.Panels[1].Dataset.Name, graph.NameModular)
	}
	if s.Panels[0].Style.Color == s.Panels[1].Style.Color {
		t.Error("panels share an accent color")
	}
	for i, p := range s.Panels {
		if p.Caption == "" {
			t.Errorf("panel %d has no caption", i)
		}
	}
}

func TestSplitBrainScene(t *testing.T) {
	intact := SplitBrain(false)
	if len(intact.Panels) != 1 {
		t.Fatalf("intact panel count = %d, want 1", len(intact.Panels))
	}
	if got := intact.Panels[0].Dataset.NodeCount(); got != 8 {
		t.Errorf("intact node count = %d, want 8", got)
	}

	split := SplitBrain(true)
	if len(split.Panels) != 2 {
		t.Fatalf("split panel count = %d, want 2", len(split.Panels))
	}
	for i, p := range split.Panels {
		if got := p.Dataset.NodeCount(); got != 4 {
			t.Errorf("hemisphere %d node count = %d, want 4", i, got)
		}
		if !p.Dataset.Connected() {
			t.Errorf("hemisphere %d not internally connected", i)
		}
	}
	if split.Panels[0].Style.Color == split.Panels[1].Style.Color {
		t.Error("hemisphere panels share an accent color")
	}
}

func TestReferences(t *testing.T) {
	refs := References()

	if len(refs) < 3 {
		t.Fatalf("reference count = %d, want at least 3", len(refs))
	}
	for i, r := range refs {
		if r.Authors == "" || r.Title == "" || r.Source == "" {
			t.Errorf("reference %d incomplete: %+v", i, r)
		}
		if r.Year < 2000 || r.Year > 2030 {
			t.Errorf("reference %d year = %d out of range", i, r.Year)
		}
	}

	var found bool
	for _, r := range refs {
		if strings.Contains(r.Title, "Integrated Information Theory 3.0") {
			found = true
		}
	}
	if !found {
		t.Error("missing the IIT 3.0 paper")
	}
}
