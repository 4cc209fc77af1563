package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

const (
	defaultFontFamily = "Helvetica, Arial, sans-serif"

	labelFontSize = 11.0
	titleFontSize = 16.0
	titleBaseline = 22.0
)

// SVGOption configures SVG serialization via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	fontFamily string
}

// WithBackground fills the canvas with a solid color before any drawing
// command is emitted. Without it the canvas stays transparent.
func WithBackground(hex string) SVGOption { return func(r *svgRenderer) { r.background = hex } }

// WithFontFamily overrides the font stack used for labels and titles.
func WithFontFamily(name string) SVGOption { return func(r *svgRenderer) { r.fontFamily = name } }

func newSVGRenderer(opts ...SVGOption) *svgRenderer {
	r := &svgRenderer{fontFamily: defaultFontFamily}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderSVG serializes a drawing as a standalone SVG document. Ops are
// emitted in sequence, so the z-order established by [render.Draw] (edges
// below, disks above, labels on top) carries directly into the markup.
func RenderSVG(d render.Drawing, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	st := d.Style

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		d.Width, d.Height, d.Width, d.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	for _, op := range d.Ops {
		switch op.Kind {
		case render.OpLine:
			fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f" stroke-linecap="round"/>`+"\n",
				op.X1, op.Y1, op.X2, op.Y2, st.Color, st.StrokeWidth, op.Opacity)
		case render.OpDisk:
			fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
				op.X, op.Y, op.R, st.Color, op.Opacity)
		case render.OpText:
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s" text-anchor="middle">%s</text>`+"\n",
				op.X, op.Y, r.fontFamily, labelFontSize, st.Color, escapeXML(op.Text))
		}
	}

	if st.Title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
			d.Width/2, titleBaseline, r.fontFamily, titleFontSize, st.Color, escapeXML(st.Title))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
