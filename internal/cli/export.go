package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	pkgio "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/io"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline"
)

// exportCommand creates the export command writing builtin datasets to JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		split  bool
	)

	cmd := &cobra.Command{
		Use:   "export [dataset]",
		Short: "Write a builtin dataset to a JSON file",
		Long: `Write a builtin dataset to a JSON file. The exported file can be
edited by hand and fed back to 'render' and 'describe', which accept a
file path wherever a dataset name is expected.`,
		ValidArgs: graph.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], output, split)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <dataset>.json)")
	cmd.Flags().BoolVar(&split, "split", false, "sever the interhemispheric edges (splitbrain only)")

	return cmd
}

// runExport resolves the builtin dataset and writes it as JSON.
func (c *CLI) runExport(name, output string, split bool) error {
	ds, err := pipeline.Load(pipeline.Options{Dataset: name, Split: split, Logger: c.Logger})
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = ds.Name + ".json"
	}
	if err := pkgio.ExportJSON(ds, path); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}

	printSuccess("Exported %s", ds.Name)
	printFile(path)
	printStats(ds.NodeCount(), ds.EdgeCount(), len(ds.Components()))
	printNewline()
	printNextStep("Render", "iitviz render "+path)

	return nil
}
