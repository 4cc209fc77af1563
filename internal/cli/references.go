package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/scene"
)

// referencesCommand creates the references command printing the reading list.
func (c *CLI) referencesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "references",
		Short: "Show the reading list behind the bundled datasets",
		Long: `Show the integrated information theory papers the bundled datasets
are modeled after. The networks are didactic simplifications; these are
the sources they simplify.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ref := range scene.References() {
				fmt.Fprintln(cmd.OutOrStdout(), formatReference(ref))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// formatReference renders one reading-list entry as an indented block.
func formatReference(ref scene.Reference) string {
	return StyleTitle.Render(ref.Title) + "\n" +
		"  " + StyleDim.Render(fmt.Sprintf("%s (%d)", ref.Authors, ref.Year)) + "\n" +
		"  " + StyleValue.Render(ref.Source)
}
