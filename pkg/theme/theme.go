// Package theme loads rendering themes from TOML files.
//
// A theme bundles the canvas geometry, a base style, and per-panel accent
// colors. Every field is optional: [Load] fills gaps from [Default], so a
// theme file only has to name what it changes.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// Theme is the decoded form of a theme file.
type Theme struct {
	Canvas Canvas            `toml:"canvas"`
	Style  Style             `toml:"style"`
	Panels map[string]string `toml:"panels"`
}

// Canvas describes the target surface.
type Canvas struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

// Style mirrors [render.Style] with TOML field names.
type Style struct {
	Color       string  `toml:"color"`
	StrokeWidth float64 `toml:"stroke_width"`
	NodeRadius  float64 `toml:"node_radius"`
	EdgeOpacity float64 `toml:"edge_opacity"`
	NodeOpacity float64 `toml:"node_opacity"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Canvas: Canvas{
			Width:      800,
			Height:     800,
			Background: "#FFFFFF",
		},
		Style: Style{
			Color:       render.DefaultColor,
			StrokeWidth: render.DefaultStrokeWidth,
			NodeRadius:  render.DefaultNodeRadius,
			EdgeOpacity: render.DefaultEdgeOpacity,
			NodeOpacity: render.DefaultNodeOpacity,
		},
		Panels: map[string]string{
			"integrated": "#2E86AB",
			"modular":    "#A23B72",
			"left":       "#2E86AB",
			"right":      "#E8871E",
		},
	}
}

// Load reads and decodes a theme file, filling unset fields from the
// default theme and rejecting colors that the renderer cannot parse.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}

	t := Default()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

func (t Theme) validate() error {
	if _, err := render.ParseHex(t.Style.Color); err != nil {
		return fmt.Errorf("style color: %w", err)
	}
	if t.Canvas.Background != "" {
		if _, err := render.ParseHex(t.Canvas.Background); err != nil {
			return fmt.Errorf("canvas background: %w", err)
		}
	}
	for name, hex := range t.Panels {
		if _, err := render.ParseHex(hex); err != nil {
			return fmt.Errorf("panel %q color: %w", name, err)
		}
	}
	if t.Canvas.Width <= 0 || t.Canvas.Height <= 0 {
		return fmt.Errorf("canvas %gx%g: dimensions must be positive", t.Canvas.Width, t.Canvas.Height)
	}
	return nil
}

// Surface returns the canvas dimensions as a size.
func (t Theme) Surface() geom.Size {
	return geom.Size{Width: t.Canvas.Width, Height: t.Canvas.Height}
}

// RenderStyle converts the theme's base style for the renderer.
func (t Theme) RenderStyle() render.Style {
	return render.Style{
		Color:       t.Style.Color,
		StrokeWidth: t.Style.StrokeWidth,
		NodeRadius:  t.Style.NodeRadius,
		EdgeOpacity: t.Style.EdgeOpacity,
		NodeOpacity: t.Style.NodeOpacity,
	}
}

// PanelColor returns the accent assigned to a named panel, falling back
// to the base style color when the theme names no such panel.
func (t Theme) PanelColor(name string) string {
	if hex, ok := t.Panels[name]; ok {
		return hex
	}
	return t.Style.Color
}
