package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// datasetsCommand creates the datasets command listing the builtin networks.
func (c *CLI) datasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the builtin network datasets",
		Long: `List the builtin network datasets with their node, edge, and
component counts. Any of the listed names can be passed to 'render',
'describe', or 'export'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), datasetsTable())
			return nil
		},
	}
}

// datasetsTable renders the builtin datasets as a bordered table.
func datasetsTable() string {
	rows := [][]string{}
	for _, name := range graph.Names() {
		ds, ok := graph.Builtin(name)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(ds.NodeCount()),
			strconv.Itoa(ds.EdgeCount()),
			strconv.Itoa(len(ds.Components())),
			truncate(ds.Description, 56),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dataset", "Nodes", "Edges", "Components", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleHighlight
			case 4:
				return StyleDim
			default:
				return StyleValue
			}
		})

	return t.Render()
}

// truncate shortens s to at most max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
