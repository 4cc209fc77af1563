// Package pipeline provides the core visualization pipeline.
//
// This package implements the complete load → draw → render pipeline used
// by the CLI. By centralizing this logic, every entry point shares the same
// defaults, validation, and stage behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Fetch a builtin dataset or import one from a JSON file
//  2. Draw: Project the dataset onto the target surface as drawing commands
//  3. Render: Generate output artifacts in the requested formats
//
// # Usage
//
// Configure Options and execute the pipeline:
//
//	opts := pipeline.Options{
//	    Dataset: "integrated",
//	    VizType: pipeline.VizPlain,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := pipeline.Run(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Formats the selected viz type cannot produce are skipped and reported in
// Result.Stats.Skipped rather than failing the run.
package pipeline

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	apperrors "github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/errors"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 800.0

	// DefaultScale is the default PNG supersampling factor.
	DefaultScale = 2.0
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizPlain

// Visualization type constants.
const (
	VizPlain    = "plain"
	VizGraphviz = "graphviz"
	VizECharts  = "echarts"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatHTML = "html"
)

// BackgroundTransparent requests no background fill. An empty Background
// falls back to the theme's canvas color instead.
const BackgroundTransparent = "transparent"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatHTML: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizPlain:    true,
	VizGraphviz: true,
	VizECharts:  true,
}

// vizFormats maps each viz type to the formats it can produce. Requesting
// a format outside this set skips it via errSkipFormat.
var vizFormats = map[string]map[string]bool{
	VizPlain:    {FormatSVG: true, FormatPNG: true, FormatJSON: true},
	VizGraphviz: {FormatSVG: true, FormatPNG: true, FormatDOT: true},
	VizECharts:  {FormatHTML: true},
}

// errSkipFormat marks a format the selected viz type cannot produce.
var errSkipFormat = errors.New("format not supported by viz type")

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for batch and session files.
type Options struct {
	// Load options
	Dataset string `json:"dataset,omitempty"` // Builtin dataset name
	Input   string `json:"input,omitempty"`   // Path to a JSON dataset file
	Split   bool   `json:"split,omitempty"`   // Severed variant of the splitbrain dataset

	// Draw options
	VizType string  `json:"viz_type,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Stretch bool    `json:"stretch,omitempty"` // Fill the full surface instead of the inset square
	Labels  bool    `json:"labels,omitempty"`

	// Style options; zero values fall back to the theme, then to renderer defaults
	Color       string  `json:"color,omitempty"`
	Background  string  `json:"background,omitempty"`
	Title       string  `json:"title,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	NodeRadius  float64 `json:"node_radius,omitempty"`
	EdgeOpacity float64 `json:"edge_opacity,omitempty"`
	NodeOpacity float64 `json:"node_opacity,omitempty"`
	Theme       string  `json:"theme,omitempty"` // Path to a TOML theme file

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG supersampling factor

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, dot, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return apperrors.New(apperrors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: plain, graphviz, echarts)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetDrawDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Color != "" {
		if err := apperrors.ValidateHexColor(o.Color); err != nil {
			return err
		}
	}
	if o.Background != "" && o.Background != BackgroundTransparent {
		if err := apperrors.ValidateHexColor(o.Background); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the dataset source selection. With neither a
// dataset name nor an input path set, the integrated builtin is used.
func (o *Options) ValidateForLoad() error {
	if o.Dataset != "" && o.Input != "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "dataset and input are mutually exclusive")
	}
	if o.Dataset == "" && o.Input == "" {
		o.Dataset = graph.NameIntegrated
	}
	if o.Dataset != "" {
		if err := apperrors.ValidateDatasetName(o.Dataset); err != nil {
			return err
		}
	}
	if o.Input != "" {
		if err := apperrors.ValidatePath(o.Input); err != nil {
			return err
		}
	}
	if o.Split && o.Dataset != graph.NameSplitBrain {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"split applies only to the %q dataset", graph.NameSplitBrain)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetDrawDefaults sets default values for the draw stage. Width and height
// stay zero here so a theme's canvas size can take effect; Run resolves
// them.
func (o *Options) SetDrawDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsPlain returns true if this is a plain (native renderer) visualization.
func (o *Options) IsPlain() bool {
	return o.VizType == "" || o.VizType == VizPlain
}

// IsGraphviz returns true if this is a Graphviz visualization.
func (o *Options) IsGraphviz() bool {
	return o.VizType == VizGraphviz
}

// IsECharts returns true if this is an ECharts visualization.
func (o *Options) IsECharts() bool {
	return o.VizType == VizECharts
}

// FormatSupported reports whether the selected viz type can produce the
// given format.
func (o *Options) FormatSupported(format string) bool {
	return vizFormats[o.VizType][format]
}
