package scene

import (
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// Accent colors assigned to panels so side-by-side datasets read apart.
const (
	accentIntegrated = "#2E86AB"
	accentModular    = "#A23B72"
	accentLeft       = "#2E86AB"
	accentRight      = "#E8871E"
)

// Panel is one dataset rendered inside a scene, with its own style and
// explanatory text.
type Panel struct {
	Title   string
	Caption string
	Style   render.Style
	Dataset graph.Dataset
}

// Scene is an ordered row of panels under a shared heading. Compose it
// with [ComposeSVG] or [ComposePNG].
type Scene struct {
	Title  string
	Panels []Panel
}

// Comparison builds the canonical two-panel scene: the densely re-entrant
// network next to the three-module network. The point of the pairing is
// that integration, not raw connectivity, separates the two.
func Comparison() Scene {
	return Scene{
		Title: "Integration versus modularity",
		Panels: []Panel{
			{
				Title:   "Integrated",
				Caption: "Re-entrant long-range coupling. High integration.",
				Style:   render.Style{Color: accentIntegrated},
				Dataset: graph.Integrated(),
			},
			{
				Title:   "Modular",
				Caption: "Three closed loops, no cross-talk. Near-zero integration.",
				Style:   render.Style{Color: accentModular},
				Dataset: graph.Modular(),
			},
		},
	}
}

// SplitBrain builds the callosotomy scene. Intact shows the merged
// two-hemisphere network in a single panel. Split shows each hemisphere
// as its own panel, rendered from its own sub-dataset. The toggle only
// selects between datasets; the renderer is unaware of it.
func SplitBrain(split bool) Scene {
	if !split {
		return Scene{
			Title: "Split-brain: intact",
			Panels: []Panel{{
				Title:   "Both hemispheres",
				Caption: "Callosal fibers couple the hemispheres into one complex.",
				Style:   render.Style{Color: accentIntegrated},
				Dataset: graph.SplitBrain(false),
			}},
		}
	}

	left, right := graph.SplitBrainHalves()
	return Scene{
		Title: "Split-brain: severed",
		Panels: []Panel{
			{
				Title:   "Left hemisphere",
				Caption: "Independent complex after callosotomy.",
				Style:   render.Style{Color: accentLeft},
				Dataset: left,
			},
			{
				Title:   "Right hemisphere",
				Caption: "Independent complex after callosotomy.",
				Style:   render.Style{Color: accentRight},
				Dataset: right,
			},
		},
	}
}

// Reference is one entry in the background reading list.
type Reference struct {
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	Title   string `json:"title"`
	Source  string `json:"source"`
}

// References returns the reading list behind the bundled datasets.
func References() []Reference {
	return []Reference{
		{
			Authors: "Tononi G",
			Year:    2004,
			Title:   "An information integration theory of consciousness",
			Source:  "BMC Neuroscience 5:42",
		},
		{
			Authors: "Tononi G",
			Year:    2008,
			Title:   "Consciousness as integrated information: a provisional manifesto",
			Source:  "Biological Bulletin 215(3)",
		},
		{
			Authors: "Oizumi M, Albantakis L, Tononi G",
			Year:    2014,
			Title:   "From the phenomenology to the mechanisms of consciousness: Integrated Information Theory 3.0",
			Source:  "PLoS Computational Biology 10(5)",
		},
		{
			Authors: "Tononi G, Boly M, Massimini M, Koch C",
			Year:    2016,
			Title:   "Integrated information theory: from consciousness to its physical substrate",
			Source:  "Nature Reviews Neuroscience 17(7)",
		},
	}
}
