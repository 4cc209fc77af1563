package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline"
)

// describeCommand creates the describe command showing dataset internals.
func (c *CLI) describeCommand() *cobra.Command {
	var split bool

	cmd := &cobra.Command{
		Use:   "describe [dataset|file.json]",
		Short: "Show the nodes, edges, and components of a dataset",
		Long: `Show the structure of a dataset: its connected components, the
reciprocal (bidirectional) edge pairs, and every node with its normalized
position. The argument is a builtin dataset name or a JSON file path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDescribe(args[0], split)
		},
	}

	cmd.Flags().BoolVar(&split, "split", false, "sever the interhemispheric edges (splitbrain only)")

	return cmd
}

// runDescribe loads the dataset and prints its structural summary.
func (c *CLI) runDescribe(input string, split bool) error {
	opts := pipeline.Options{Split: split, Logger: c.Logger}
	if looksLikeFile(input) {
		opts.Input = input
	} else {
		opts.Dataset = input
	}

	ds, err := pipeline.Load(opts)
	if err != nil {
		return err
	}

	comps := ds.Components()

	printKeyValue("Dataset", ds.Name)
	if ds.Description != "" {
		printKeyValue("About", ds.Description)
	}
	printKeyValue("Nodes", strconv.Itoa(ds.NodeCount()))
	printKeyValue("Edges", strconv.Itoa(ds.EdgeCount()))
	printKeyValue("Components", strconv.Itoa(len(comps)))
	printNewline()

	for i, comp := range comps {
		printKeyValue(fmt.Sprintf("Component %d", i+1), componentLabels(ds, comp))
	}

	if pairs := ds.ReciprocalPairs(); len(pairs) > 0 {
		printNewline()
		for _, pair := range pairs {
			printKeyValue("Reciprocal", reciprocalLabel(ds, pair))
		}
	}

	printNewline()
	fmt.Println(nodeTable(ds))

	return nil
}

// componentLabels lists the node labels of one component in ID order,
// falling back to the ID for unlabeled nodes.
func componentLabels(ds graph.Dataset, comp []int) string {
	labels := make([]string, 0, len(comp))
	for _, id := range comp {
		n, ok := ds.Node(id)
		if !ok {
			continue
		}
		if n.Label == "" {
			labels = append(labels, strconv.Itoa(n.ID))
			continue
		}
		labels = append(labels, n.Label)
	}
	return strings.Join(labels, ", ")
}

// reciprocalLabel formats a bidirectional edge pair using node labels,
// falling back to IDs when a label is missing.
func reciprocalLabel(ds graph.Dataset, pair [2]int) string {
	a, okA := ds.Node(pair[0])
	b, okB := ds.Node(pair[1])
	if !okA || !okB || a.Label == "" || b.Label == "" {
		return fmt.Sprintf("%d ↔ %d", pair[0], pair[1])
	}
	return fmt.Sprintf("%s ↔ %s", a.Label, b.Label)
}

// nodeTable renders every node with its normalized position.
func nodeTable(ds graph.Dataset) string {
	rows := make([][]string, 0, len(ds.Nodes))
	for _, n := range ds.Nodes {
		rows = append(rows, []string{
			strconv.Itoa(n.ID),
			n.Label,
			fmt.Sprintf("%.2f", n.Position.X),
			fmt.Sprintf("%.2f", n.Position.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleNumber
			}
			return StyleValue
		})

	return t.Render()
}
