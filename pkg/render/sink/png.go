package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// PNGOption configures rasterization via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
}

// WithScale sets the supersampling factor. The raster is scale times larger
// than the drawing's logical surface in each dimension. Default is 2.
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGBackground fills the raster with a solid color before drawing.
// Without it the background stays transparent.
func WithPNGBackground(hex string) PNGOption { return func(r *pngRenderer) { r.background = hex } }

func newPNGRenderer(opts ...PNGOption) *pngRenderer {
	r := &pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderPNG rasterizes a drawing into an encoded PNG. Ops are replayed in
// sequence so edge lines land underneath the node disks.
func RenderPNG(d render.Drawing, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	st := d.Style

	accent, err := render.ParseHex(st.Color)
	if err != nil {
		return nil, fmt.Errorf("style color: %w", err)
	}

	sc := r.scale
	dc := gg.NewContext(int(d.Width*sc+0.5), int(d.Height*sc+0.5))

	if r.background != "" {
		bg, err := render.ParseHex(r.background)
		if err != nil {
			return nil, fmt.Errorf("background color: %w", err)
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	labelFace, err := fontFace(labelFontSize * sc)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	for _, op := range d.Ops {
		switch op.Kind {
		case render.OpLine:
			dc.SetColor(withAlpha(accent, op.Opacity))
			dc.SetLineWidth(st.StrokeWidth * sc)
			dc.DrawLine(op.X1*sc, op.Y1*sc, op.X2*sc, op.Y2*sc)
			dc.Stroke()
		case render.OpDisk:
			dc.SetColor(withAlpha(accent, op.Opacity))
			dc.DrawCircle(op.X*sc, op.Y*sc, op.R*sc)
			dc.Fill()
		case render.OpText:
			dc.SetFontFace(labelFace)
			dc.SetColor(accent)
			dc.DrawStringAnchored(op.Text, op.X*sc, op.Y*sc, 0.5, 0)
		}
	}

	if st.Title != "" {
		titleFace, err := fontFace(titleFontSize * sc)
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		dc.SetFontFace(titleFace)
		dc.SetColor(accent)
		dc.DrawStringAnchored(st.Title, d.Width*sc/2, titleBaseline*sc, 0.5, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func withAlpha(c color.RGBA, opacity float64) color.Color {
	opacity = min(max(opacity, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

func fontFace(points float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
