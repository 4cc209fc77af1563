package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// Layout chrome in logical pixels.
const (
	panelPad    = 16.0
	sceneTitleH = 40.0
	panelTitleH = 26.0
	captionH    = 26.0

	sceneTitleFontSize = 18.0
	panelTitleFontSize = 14.0
	captionFontSize    = 12.0
	labelFontSize      = 11.0

	headingColor = "#333333"
	captionColor = "#666666"
	fontFamily   = "Helvetica, Arial, sans-serif"
)

// ComposeOption configures scene composition.
type ComposeOption func(*composer)

type composer struct {
	background string
	labels     bool
	scale      float64
}

// WithBackground overrides the canvas fill. Default is white, since scenes
// carry text chrome that needs contrast. An empty string keeps the canvas
// transparent.
func WithBackground(hex string) ComposeOption { return func(c *composer) { c.background = hex } }

// WithLabels renders node labels inside every panel.
func WithLabels() ComposeOption { return func(c *composer) { c.labels = true } }

// WithScale sets the PNG supersampling factor. Default is 2. SVG output
// ignores it.
func WithScale(s float64) ComposeOption { return func(c *composer) { c.scale = s } }

func newComposer(opts ...ComposeOption) *composer {
	c := &composer{background: "#FFFFFF", scale: 2.0}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// frame captures the computed scene geometry: the square panel side, the
// y offset where panels begin, and the total canvas extent.
type frame struct {
	side   float64
	top    float64
	width  float64
	height float64
}

func (s Scene) frame(panelSize geom.Size) frame {
	side := panelSize.Min()
	top := panelPad
	if s.Title != "" {
		top += sceneTitleH
	}
	top += panelTitleH

	bottom := panelPad
	for _, p := range s.Panels {
		if p.Caption != "" {
			bottom += captionH
			break
		}
	}

	n := float64(len(s.Panels))
	return frame{
		side:   side,
		top:    top,
		width:  panelPad + n*(side+panelPad),
		height: top + side + bottom,
	}
}

func (f frame) panelOrigin(i int) geom.Point {
	return geom.Point{X: panelPad + float64(i)*(f.side+panelPad), Y: f.top}
}

// ComposeSVG renders every panel through the core renderer and lays the
// results out side by side with the scene title, per-panel titles, and
// captions.
func ComposeSVG(s Scene, panelSize geom.Size, opts ...ComposeOption) []byte {
	c := newComposer(opts...)
	f := s.frame(panelSize)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)
	if c.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.background)
	}
	if s.Title != "" {
		writeSVGText(&buf, f.width/2, panelPad+sceneTitleFontSize, sceneTitleFontSize, headingColor, "bold", s.Title)
	}

	for i, p := range s.Panels {
		o := f.panelOrigin(i)
		d := drawPanel(p, f.side, c.labels)

		if p.Title != "" {
			writeSVGText(&buf, o.X+f.side/2, o.Y-8, panelTitleFontSize, headingColor, "bold", p.Title)
		}

		fmt.Fprintf(&buf, `  <g transform="translate(%.1f, %.1f)">`+"\n", o.X, o.Y)
		writeSVGOps(&buf, d)
		buf.WriteString("  </g>\n")

		if p.Caption != "" {
			writeSVGText(&buf, o.X+f.side/2, o.Y+f.side+captionFontSize+6, captionFontSize, captionColor, "", p.Caption)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func drawPanel(p Panel, side float64, labels bool) render.Drawing {
	var opts []render.Option
	if labels {
		opts = append(opts, render.WithLabels())
	}
	return render.Draw(p.Dataset, geom.Square(side), p.Style, opts...)
}

func writeSVGOps(buf *bytes.Buffer, d render.Drawing) {
	st := d.Style
	for _, op := range d.Ops {
		switch op.Kind {
		case render.OpLine:
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f" stroke-linecap="round"/>`+"\n",
				op.X1, op.Y1, op.X2, op.Y2, st.Color, st.StrokeWidth, op.Opacity)
		case render.OpDisk:
			fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
				op.X, op.Y, op.R, st.Color, op.Opacity)
		case render.OpText:
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s" text-anchor="middle">%s</text>`+"\n",
				op.X, op.Y, fontFamily, labelFontSize, st.Color, escapeXML(op.Text))
		}
	}
}

func writeSVGText(buf *bytes.Buffer, x, y, size float64, fill, weight, text string) {
	attr := ""
	if weight != "" {
		attr = fmt.Sprintf(` font-weight="%s"`, weight)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f"%s fill="%s" text-anchor="middle">%s</text>`+"\n",
		x, y, fontFamily, size, attr, fill, escapeXML(text))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
