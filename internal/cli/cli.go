// Package cli implements the iitviz command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/buildinfo"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and derived filenames.
	appName = "iitviz"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "iitviz",
		Short:        "Iitviz visualizes brain network models from integrated information theory",
		Long:         `Iitviz is a CLI tool for rendering small brain network models used to teach integrated information theory, from quick terminal previews to publication-ready SVG and PNG figures.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// The logger rides the command context so run helpers reach it
		// through ctx alone.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sceneCommand())
	root.AddCommand(c.datasetsCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.referencesCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseVizTypes parses a comma-separated visualization type string into a slice.
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{pipeline.VizPlain}
	}
	return strings.Split(s, ",")
}
