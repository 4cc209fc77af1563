package graph

import (
	"sort"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
)

// Builtin dataset names accepted by [Builtin] and the CLI.
const (
	// NameIntegrated is the densely recurrent thalamocortical network.
	NameIntegrated = "integrated"
	// NameModular is the insulated three-module network.
	NameModular = "modular"
	// NameSplitBrain is the two-hemisphere network with callosal bridges.
	NameSplitBrain = "splitbrain"
)

// builtins holds one canonical instance of each fixture, constructed once
// at process start. Edge identities stay stable for the process lifetime,
// which lets hosts track edges across repeated fetches (the split-brain
// toggle relies on this).
var builtins map[string]Dataset

func init() {
	builtins = map[string]Dataset{
		NameIntegrated: buildIntegrated(),
		NameModular:    buildModular(),
		NameSplitBrain: buildSplitBrain(),
	}
}

// Integrated returns the dense thalamocortical fixture: 6 regions, 10
// directed edges, a single weakly connected component, and a reciprocal
// long-range loop between prefrontal and occipital cortex. This is the
// kind of re-entrant architecture IIT associates with high Φ.
func Integrated() Dataset { return builtins[NameIntegrated].Clone() }

// Modular returns the insulated fixture: 9 nodes in three groups of three,
// each group a closed directed 3-cycle, with no connections between groups.
// Lots of local activity, zero integration across modules: the cerebellar
// counterpoint IIT associates with low Φ despite high neuron counts.
func Modular() Dataset { return builtins[NameModular].Clone() }

// SplitBrain returns the two-hemisphere fixture. With split false the
// hemispheres are bridged by four callosal edges and form one component.
// With split true the callosal edges are removed and exactly two
// components remain; every surviving edge keeps its original identity.
func SplitBrain(split bool) Dataset {
	d := builtins[NameSplitBrain].Clone()
	if !split {
		return d
	}
	kept := d.Edges[:0]
	for _, e := range d.Edges {
		if !callosal(e) {
			kept = append(kept, e)
		}
	}
	d.Edges = kept
	d.Name = d.Name + "-severed"
	return d
}

// SplitBrainHalves returns the two hemisphere sub-datasets of the
// split-brain fixture, each carrying only intra-hemisphere edges. This is
// the side-by-side presentation form; [SplitBrain] with split true is the
// single-dataset form of the same cut.
func SplitBrainHalves() (left, right Dataset) {
	base := builtins[NameSplitBrain]
	left = base.Subset(1, 2, 3, 4)
	left.Name = "left-hemisphere"
	left.Description = "Left hemisphere in isolation."
	right = base.Subset(5, 6, 7, 8)
	right.Name = "right-hemisphere"
	right.Description = "Right hemisphere in isolation."
	return left, right
}

// callosal reports whether an edge crosses between hemispheres of the
// split-brain fixture (left nodes are 1-4, right nodes are 5-8).
func callosal(e Edge) bool {
	return (e.Source <= 4) != (e.Target <= 4)
}

// Builtin returns a copy of the named builtin dataset and true, or the
// zero dataset and false when the name is unknown. The split-brain entry
// is returned in its intact (bridged) form.
func Builtin(name string) (Dataset, bool) {
	d, ok := builtins[name]
	if !ok {
		return Dataset{}, false
	}
	return d.Clone(), true
}

// Names returns the builtin dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildIntegrated() Dataset {
	return Dataset{
		Name: NameIntegrated,
		Description: "Thalamocortical web: specialized regions bound by " +
			"dense recurrent loops. Differentiated and integrated at once, " +
			"the architecture IIT credits with high Φ.",
		Nodes: []Node{
			{ID: 1, Position: geom.Point{X: 0.50, Y: 0.08}, Label: "Prefrontal"},
			{ID: 2, Position: geom.Point{X: 0.88, Y: 0.35}, Label: "Parietal"},
			{ID: 3, Position: geom.Point{X: 0.80, Y: 0.85}, Label: "Occipital"},
			{ID: 4, Position: geom.Point{X: 0.20, Y: 0.85}, Label: "Temporal"},
			{ID: 5, Position: geom.Point{X: 0.50, Y: 0.50}, Label: "Thalamus"},
			{ID: 6, Position: geom.Point{X: 0.12, Y: 0.35}, Label: "Cingulate"},
		},
		Edges: []Edge{
			NewEdge(1, 2),
			NewEdge(2, 3),
			NewEdge(3, 4),
			NewEdge(4, 6),
			NewEdge(6, 1),
			NewEdge(5, 1),
			NewEdge(5, 3),
			NewEdge(2, 5),
			NewEdge(1, 3), // long-range re-entrant pair:
			NewEdge(3, 1), // prefrontal ↔ occipital
		},
	}
}

func buildModular() Dataset {
	return Dataset{
		Name: NameModular,
		Description: "Insulated modules: three busy circuits that never " +
			"talk to each other. Cerebellum-style organization, which IIT " +
			"associates with low Φ no matter how many cells fire.",
		Nodes: []Node{
			{ID: 1, Position: geom.Point{X: 0.15, Y: 0.15}, Label: "A1"},
			{ID: 2, Position: geom.Point{X: 0.35, Y: 0.15}, Label: "A2"},
			{ID: 3, Position: geom.Point{X: 0.25, Y: 0.32}, Label: "A3"},
			{ID: 4, Position: geom.Point{X: 0.65, Y: 0.15}, Label: "B1"},
			{ID: 5, Position: geom.Point{X: 0.85, Y: 0.15}, Label: "B2"},
			{ID: 6, Position: geom.Point{X: 0.75, Y: 0.32}, Label: "B3"},
			{ID: 7, Position: geom.Point{X: 0.40, Y: 0.72}, Label: "C1"},
			{ID: 8, Position: geom.Point{X: 0.60, Y: 0.72}, Label: "C2"},
			{ID: 9, Position: geom.Point{X: 0.50, Y: 0.89}, Label: "C3"},
		},
		Edges: []Edge{
			NewEdge(1, 2), NewEdge(2, 3), NewEdge(3, 1),
			NewEdge(4, 5), NewEdge(5, 6), NewEdge(6, 4),
			NewEdge(7, 8), NewEdge(8, 9), NewEdge(9, 7),
		},
	}
}

func buildSplitBrain() Dataset {
	return Dataset{
		Name: NameSplitBrain,
		Description: "Two hemispheres joined by callosal bridges. Cutting " +
			"the bridges leaves both halves active but splits one " +
			"experience into two.",
		Nodes: []Node{
			{ID: 1, Position: geom.Point{X: 0.18, Y: 0.15}, Label: "L Frontal"},
			{ID: 2, Position: geom.Point{X: 0.32, Y: 0.45}, Label: "L Parietal"},
			{ID: 3, Position: geom.Point{X: 0.10, Y: 0.55}, Label: "L Temporal"},
			{ID: 4, Position: geom.Point{X: 0.25, Y: 0.82}, Label: "L Occipital"},
			{ID: 5, Position: geom.Point{X: 0.82, Y: 0.15}, Label: "R Frontal"},
			{ID: 6, Position: geom.Point{X: 0.68, Y: 0.45}, Label: "R Parietal"},
			{ID: 7, Position: geom.Point{X: 0.90, Y: 0.55}, Label: "R Temporal"},
			{ID: 8, Position: geom.Point{X: 0.75, Y: 0.82}, Label: "R Occipital"},
		},
		Edges: []Edge{
			// Intra-hemisphere cycles keep each half internally integrated.
			NewEdge(1, 2), NewEdge(2, 4), NewEdge(4, 3), NewEdge(3, 1),
			NewEdge(5, 6), NewEdge(6, 8), NewEdge(8, 7), NewEdge(7, 5),
			// Callosal bridges, reciprocal at frontal and occipital poles.
			NewEdge(1, 5), NewEdge(5, 1),
			NewEdge(4, 8), NewEdge(8, 4),
		},
	}
}
