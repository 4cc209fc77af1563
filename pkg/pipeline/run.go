package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/errors"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	pkgio "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/io"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/observability"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/dot"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/echarts"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render/sink"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/theme"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded dataset.
	Dataset graph.Dataset

	// Drawing is the computed drawing command list.
	Drawing render.Drawing

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	OpCount    int
	Skipped    []string // Formats the viz type could not produce
	LoadTime   time.Duration
	DrawTime   time.Duration
	RenderTime time.Duration
}

// runConfig carries the resolved surface and style shared by the draw and
// render stages.
type runConfig struct {
	surface    geom.Size
	style      render.Style
	background string
}

// Run executes the complete load → draw → render pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	source := opts.Dataset
	if opts.Input != "" {
		source = opts.Input
	}
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, source)
	ds, err := load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks.OnLoadComplete(ctx, source, ds.NodeCount(), ds.EdgeCount(), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.Stats.NodeCount = ds.NodeCount()
	result.Stats.EdgeCount = ds.EdgeCount()

	opts.Logger.Info("loaded dataset",
		"name", ds.Name,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Draw
	drawStart := time.Now()
	hooks.OnDrawStart(ctx, ds.Name, ds.NodeCount())
	var drawOpts []render.Option
	if opts.Stretch {
		drawOpts = append(drawOpts, render.WithStretch())
	}
	if opts.Labels {
		drawOpts = append(drawOpts, render.WithLabels())
	}
	d := render.Draw(ds, cfg.surface, cfg.style, drawOpts...)
	result.Stats.DrawTime = time.Since(drawStart)
	hooks.OnDrawComplete(ctx, ds.Name, len(d.Ops), result.Stats.DrawTime, nil)
	result.Drawing = d
	result.Stats.OpCount = len(d.Ops)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	var renderErr error
	for _, format := range opts.Formats {
		data, err := renderArtifact(ctx, format, ds, d, cfg, opts)
		if errors.Is(err, errSkipFormat) {
			result.Stats.Skipped = append(result.Stats.Skipped, format)
			opts.Logger.Warn("format not supported by viz type, skipping",
				"format", format,
				"viz_type", opts.VizType)
			continue
		}
		if err != nil {
			renderErr = apperrors.Wrap(apperrors.ErrCodeRenderFailed, err, "render %s", format)
			break
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, renderErr
	}

	opts.Logger.Info("rendered artifacts",
		"formats", len(result.Artifacts),
		"skipped", len(result.Stats.Skipped),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load runs only the load stage: it resolves and validates the dataset
// source without drawing or rendering. Commands that inspect or export a
// dataset use this instead of the full [Run].
func Load(opts Options) (graph.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return graph.Dataset{}, err
	}
	return load(opts)
}

// load fetches the dataset named by the options, either a builtin or an
// imported JSON file.
func load(opts Options) (graph.Dataset, error) {
	if opts.Input != "" {
		ds, err := pkgio.ImportJSON(opts.Input)
		if err != nil {
			code := apperrors.ErrCodeInvalidDataset
			if errors.Is(err, fs.ErrNotExist) {
				code = apperrors.ErrCodeFileNotFound
			}
			return graph.Dataset{}, apperrors.Wrap(code, err, "import %s", opts.Input)
		}
		return ds, nil
	}

	if opts.Dataset == graph.NameSplitBrain {
		return graph.SplitBrain(opts.Split), nil
	}
	ds, ok := graph.Builtin(opts.Dataset)
	if !ok {
		return graph.Dataset{}, apperrors.New(apperrors.ErrCodeDatasetNotFound,
			"unknown dataset %q (available: %s)", opts.Dataset, strings.Join(graph.Names(), ", "))
	}
	return ds, nil
}

// resolveConfig merges the theme with explicit option overrides. Explicit
// values win over the theme, which wins over renderer defaults.
func resolveConfig(opts Options) (runConfig, error) {
	th := theme.Default()
	if opts.Theme != "" {
		loaded, err := theme.Load(opts.Theme)
		if err != nil {
			return runConfig{}, apperrors.Wrap(apperrors.ErrCodeConfig, err, "load theme")
		}
		th = loaded
	}

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = th.Canvas.Width
	}
	if h == 0 {
		h = th.Canvas.Height
	}
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	if err := apperrors.ValidateSurface(int(w), int(h)); err != nil {
		return runConfig{}, err
	}

	st := th.RenderStyle()
	if opts.Color != "" {
		st.Color = opts.Color
	}
	if opts.Title != "" {
		st.Title = opts.Title
	}
	if opts.StrokeWidth != 0 {
		st.StrokeWidth = opts.StrokeWidth
	}
	if opts.NodeRadius != 0 {
		st.NodeRadius = opts.NodeRadius
	}
	if opts.EdgeOpacity != 0 {
		st.EdgeOpacity = opts.EdgeOpacity
	}
	if opts.NodeOpacity != 0 {
		st.NodeOpacity = opts.NodeOpacity
	}

	background := th.Canvas.Background
	switch opts.Background {
	case "":
	case BackgroundTransparent:
		background = ""
	default:
		background = opts.Background
	}

	return runConfig{surface: geom.Size{Width: w, Height: h}, style: st, background: background}, nil
}

// renderArtifact produces one output artifact, or errSkipFormat when the
// viz type cannot produce the requested format.
func renderArtifact(ctx context.Context, format string, ds graph.Dataset, d render.Drawing, cfg runConfig, opts Options) ([]byte, error) {
	if !opts.FormatSupported(format) {
		return nil, errSkipFormat
	}

	switch {
	case opts.IsPlain():
		switch format {
		case FormatSVG:
			var svgOpts []sink.SVGOption
			if cfg.background != "" {
				svgOpts = append(svgOpts, sink.WithBackground(cfg.background))
			}
			return sink.RenderSVG(d, svgOpts...), nil
		case FormatPNG:
			pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
			if cfg.background != "" {
				pngOpts = append(pngOpts, sink.WithPNGBackground(cfg.background))
			}
			return sink.RenderPNG(d, pngOpts...)
		case FormatJSON:
			return sink.RenderJSON(d)
		}

	case opts.IsGraphviz():
		src := dot.ToDOT(ds, cfg.surface, cfg.style, dot.Options{Labels: opts.Labels})
		switch format {
		case FormatDOT:
			return []byte(src), nil
		case FormatSVG:
			return dot.RenderSVG(ctx, src)
		case FormatPNG:
			return dot.RenderPNG(ctx, src)
		}

	case opts.IsECharts():
		var buf bytes.Buffer
		if err := echarts.Write(ds, cfg.surface, cfg.style, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	return nil, errSkipFormat
}
