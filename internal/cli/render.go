package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output      string
		vizTypesStr string
		formatsStr  string
	)
	opts := pipeline.Options{Scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [dataset|file.json]",
		Short: "Render a brain network to SVG, PNG, JSON, DOT, or HTML",
		Long: `Render a brain network model to one or more visual artifacts.

The argument is either the name of a builtin dataset (see 'iitviz datasets')
or the path to a dataset JSON file (see 'iitviz export'). Each requested
visualization type renders every requested format it supports; unsupported
combinations are skipped with a warning.

Types and their formats:
  plain     svg, png, json   direct drawing of the curated node positions
  graphviz  svg, png, dot    neato layout computed from connectivity alone
  echarts   html             interactive force-directed page`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vizTypes := parseVizTypes(vizTypesStr)
			opts.Formats = parseFormats(formatsStr)
			for _, t := range vizTypes {
				if err := pipeline.ValidateVizType(t); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], vizTypes, opts, output)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): plain (default), graphviz, echarts (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot, html (comma-separated)")

	// Drawing flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width in pixels (0 uses the theme)")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height in pixels (0 uses the theme)")
	cmd.Flags().BoolVar(&opts.Stretch, "stretch", opts.Stretch, "stretch node positions to fill the canvas")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw node labels")
	cmd.Flags().BoolVar(&opts.Split, "split", opts.Split, "sever the interhemispheric edges (splitbrain only)")

	// Style flags
	cmd.Flags().StringVar(&opts.Color, "color", opts.Color, "node fill color as hex (overrides the theme)")
	cmd.Flags().StringVar(&opts.Background, "background", opts.Background, "canvas background: hex color or 'transparent'")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "figure title drawn above the network")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "path to a TOML theme file")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG supersampling factor")

	return cmd
}

// runRender loads the dataset and renders every requested type/format combination.
// With a single type and format the output flag names the file directly; with
// several, it is treated as a base path and filenames are derived from it.
func (c *CLI) runRender(ctx context.Context, input string, vizTypes []string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)

	if looksLikeFile(input) {
		opts.Input = input
	} else {
		opts.Dataset = input
	}
	opts.Logger = logger

	single := len(vizTypes) == 1 && len(opts.Formats) == 1
	base := basePath(output, input)

	var (
		written    []string
		skipped    []string
		stats      pipeline.Stats
		components int
	)

	for _, vizType := range vizTypes {
		opts.VizType = vizType

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s visualization...", vizType))
		spinner.Start()
		result, err := pipeline.Run(ctx, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", vizType, err)
		}
		spinner.Stop()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		stats = result.Stats
		components = len(result.Dataset.Components())
		for _, format := range result.Stats.Skipped {
			skipped = append(skipped, vizType+"/"+format)
		}

		for _, format := range opts.Formats {
			data, ok := result.Artifacts[format]
			if !ok {
				continue
			}
			path := output
			if !single || path == "" {
				path = artifactPath(base, vizType, format, len(vizTypes) > 1)
			}
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			logger.Debugf("Generated %s: %d bytes", path, len(data))
			written = append(written, path)
		}
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(stats.NodeCount, stats.EdgeCount, components)
	for _, combo := range skipped {
		printWarning("Skipped %s (unsupported combination)", combo)
	}
	printNewline()

	return nil
}

// looksLikeFile reports whether the render argument names a file rather than
// a builtin dataset. Anything with a path separator or a .json extension is
// treated as a file.
func looksLikeFile(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	return strings.EqualFold(filepath.Ext(s), ".json")
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input.
// If output has a known format extension (.svg, .png, etc.), it strips that extension.
// This is used when generating multiple files (e.g., integrated_plain.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath builds the output filename for one type/format combination.
// The visualization type is part of the name only when several types are rendered.
func artifactPath(base, vizType, format string, multiType bool) string {
	if multiType {
		return fmt.Sprintf("%s_%s.%s", base, vizType, format)
	}
	return fmt.Sprintf("%s.%s", base, format)
}

// writeArtifact writes rendered bytes to path, overwriting any existing file.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
