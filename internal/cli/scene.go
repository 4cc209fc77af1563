package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/pipeline"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/scene"
)

const (
	sceneComparison = "comparison"
	sceneSplitBrain = "splitbrain"

	defaultPanelSize = 320.0
)

// sceneOpts holds the command-line flags for the scene command.
type sceneOpts struct {
	output     string   // output file (single format) or base path (multiple)
	formats    []string // output formats: "svg", "png"
	split      bool     // sever the hemispheres in the splitbrain scene
	labels     bool     // draw node labels inside every panel
	panelSize  float64  // side length of each square panel in pixels
	background string   // canvas fill: hex color or "transparent"
	scale      float64  // PNG supersampling factor
}

// sceneCommand creates the scene command for composing multi-panel figures.
func (c *CLI) sceneCommand() *cobra.Command {
	var formatsStr string
	opts := sceneOpts{panelSize: defaultPanelSize, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "scene [comparison|splitbrain]",
		Short: "Compose a multi-panel teaching figure",
		Long: `Compose one of the prebuilt multi-panel figures.

comparison places the integrated and modular networks side by side.
splitbrain shows the callosotomy model: a single panel while the
hemispheres are coupled, two independent panels with --split.

Scenes render to SVG and PNG only, since the panel chrome (headings,
captions) has no meaning in the data-oriented formats.`,
		ValidArgs: []string{sceneComparison, sceneSplitBrain},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if f != pipeline.FormatSVG && f != pipeline.FormatPNG {
					return fmt.Errorf("invalid scene format: %s (must be 'svg' or 'png')", f)
				}
			}
			return c.runScene(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().BoolVar(&opts.split, "split", opts.split, "sever the hemispheres (splitbrain only)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw node labels inside every panel")
	cmd.Flags().Float64Var(&opts.panelSize, "panel-size", opts.panelSize, "side length of each square panel in pixels")
	cmd.Flags().StringVar(&opts.background, "background", opts.background, "canvas background: hex color or 'transparent'")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG supersampling factor")

	return cmd
}

// runScene builds the named scene and writes one file per requested format.
func (c *CLI) runScene(ctx context.Context, name string, opts *sceneOpts) error {
	s, err := buildScene(name, opts.split)
	if err != nil {
		return err
	}
	copts := composeOptions(opts)
	base := basePath(opts.output, name)
	single := len(opts.formats) == 1

	prog := newProgress(loggerFromContext(ctx))
	var written []string
	for _, format := range opts.formats {
		var data []byte
		switch format {
		case pipeline.FormatSVG:
			data = scene.ComposeSVG(s, geom.Square(opts.panelSize), copts...)
		case pipeline.FormatPNG:
			data, err = scene.ComposePNG(s, geom.Square(opts.panelSize), copts...)
			if err != nil {
				return fmt.Errorf("compose %s: %w", format, err)
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		path := opts.output
		if !single || path == "" {
			path = fmt.Sprintf("%s.%s", base, format)
		}
		if err := writeArtifact(path, data); err != nil {
			return err
		}
		written = append(written, path)
	}
	prog.done(fmt.Sprintf("Composed %d panels", len(s.Panels)))

	printSuccess("%s", s.Title)
	for _, path := range written {
		printFile(path)
	}
	printNewline()

	return nil
}

// buildScene maps a scene name to its builder. The split toggle only
// affects the splitbrain scene.
func buildScene(name string, split bool) (scene.Scene, error) {
	switch name {
	case sceneComparison:
		return scene.Comparison(), nil
	case sceneSplitBrain:
		return scene.SplitBrain(split), nil
	default:
		return scene.Scene{}, fmt.Errorf("unknown scene: %s", name)
	}
}

// composeOptions translates CLI flags into scene composition options.
func composeOptions(opts *sceneOpts) []scene.ComposeOption {
	var copts []scene.ComposeOption
	switch opts.background {
	case "":
		// keep the composer's white default
	case pipeline.BackgroundTransparent:
		copts = append(copts, scene.WithBackground(""))
	default:
		copts = append(copts, scene.WithBackground(opts.background))
	}
	if opts.labels {
		copts = append(copts, scene.WithLabels())
	}
	if opts.scale != 0 {
		copts = append(copts, scene.WithScale(opts.scale))
	}
	return copts
}
