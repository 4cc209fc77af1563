package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// Muted style for help lines and captions in the explorer.
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// exploreHelp is the key legend; keep it in sync with Update.
const exploreHelp = "←/→ dataset  l labels  s split  q quit"

// =============================================================================
// ExploreModel - Interactive dataset browser
// =============================================================================

// ExploreModel is the bubbletea model for the interactive dataset browser.
// It cycles through the builtin datasets and re-renders the network on a
// rune canvas sized to the terminal.
type ExploreModel struct {
	Names  []string // builtin dataset names in display order
	Cursor int      // index into Names
	Split  bool     // sever the hemispheres of the splitbrain dataset
	Labels bool     // draw node labels on the canvas
	Width  int      // terminal width in cells
	Height int      // terminal height in cells
}

// NewExploreModel creates the explorer starting on the first builtin
// dataset, with labels on and a conservative default terminal size.
func NewExploreModel() ExploreModel {
	return ExploreModel{
		Names:  graph.Names(),
		Labels: true,
		Width:  80,
		Height: 24,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "tab":
			m.Cursor = (m.Cursor + 1) % len(m.Names)
		case "left", "shift+tab":
			m.Cursor = (m.Cursor - 1 + len(m.Names)) % len(m.Names)
		case "s":
			if m.Names[m.Cursor] == graph.NameSplitBrain {
				m.Split = !m.Split
			}
		case "l":
			m.Labels = !m.Labels
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

// Dataset returns the dataset under the cursor, honoring the split toggle.
func (m ExploreModel) Dataset() graph.Dataset {
	name := m.Names[m.Cursor]
	if name == graph.NameSplitBrain {
		return graph.SplitBrain(m.Split)
	}
	ds, _ := graph.Builtin(name)
	return ds
}

func (m ExploreModel) View() string {
	ds := m.Dataset()

	// Leave room for the title, help line, status block, and margins.
	cw := m.Width - 4
	ch := m.Height - 9
	if cw < 24 {
		cw = 24
	}
	if ch < 8 {
		ch = 8
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName + " explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(exploreHelp))
	b.WriteString("\n\n")

	b.WriteString(drawNetwork(ds, cw, ch, m.Labels))
	b.WriteString("\n\n")

	comps := len(ds.Components())
	b.WriteString(StyleHighlight.Render(ds.Name))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d nodes · %d edges · %d %s",
		ds.NodeCount(), ds.EdgeCount(), comps, componentNoun(comps))))
	b.WriteString("\n")

	if m.Names[m.Cursor] == graph.NameSplitBrain {
		if m.Split {
			b.WriteString(StyleWarning.Render("callosum severed"))
		} else {
			b.WriteString(StyleSuccess.Render("callosum intact"))
		}
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render(truncate(ds.Description, cw)))
	b.WriteString("\n")

	return b.String()
}
