package scene

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

// ComposePNG rasterizes the scene with the same layout as [ComposeSVG].
// The raster is supersampled by the configured scale factor.
func ComposePNG(s Scene, panelSize geom.Size, opts ...ComposeOption) ([]byte, error) {
	c := newComposer(opts...)
	f := s.frame(panelSize)
	sc := c.scale

	dc := gg.NewContext(int(f.width*sc+0.5), int(f.height*sc+0.5))

	if c.background != "" {
		bg, err := render.ParseHex(c.background)
		if err != nil {
			return nil, fmt.Errorf("background color: %w", err)
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	heading, err := render.ParseHex(headingColor)
	if err != nil {
		return nil, err
	}
	caption, err := render.ParseHex(captionColor)
	if err != nil {
		return nil, err
	}

	if s.Title != "" {
		if err := drawText(dc, s.Title, f.width/2*sc, (panelPad+sceneTitleFontSize)*sc, sceneTitleFontSize*sc, heading); err != nil {
			return nil, err
		}
	}

	for i, p := range s.Panels {
		o := f.panelOrigin(i)
		d := drawPanel(p, f.side, c.labels)

		accent, err := render.ParseHex(d.Style.Color)
		if err != nil {
			return nil, fmt.Errorf("panel %d color: %w", i, err)
		}

		if p.Title != "" {
			if err := drawText(dc, p.Title, (o.X+f.side/2)*sc, (o.Y-8)*sc, panelTitleFontSize*sc, heading); err != nil {
				return nil, err
			}
		}

		if err := replayOps(dc, d, o, sc, accent); err != nil {
			return nil, err
		}

		if p.Caption != "" {
			if err := drawText(dc, p.Caption, (o.X+f.side/2)*sc, (o.Y+f.side+captionFontSize+6)*sc, captionFontSize*sc, caption); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func replayOps(dc *gg.Context, d render.Drawing, origin geom.Point, sc float64, accent color.RGBA) error {
	st := d.Style
	for _, op := range d.Ops {
		switch op.Kind {
		case render.OpLine:
			dc.SetColor(alpha(accent, op.Opacity))
			dc.SetLineWidth(st.StrokeWidth * sc)
			dc.DrawLine((origin.X+op.X1)*sc, (origin.Y+op.Y1)*sc, (origin.X+op.X2)*sc, (origin.Y+op.Y2)*sc)
			dc.Stroke()
		case render.OpDisk:
			dc.SetColor(alpha(accent, op.Opacity))
			dc.DrawCircle((origin.X+op.X)*sc, (origin.Y+op.Y)*sc, op.R*sc)
			dc.Fill()
		case render.OpText:
			if err := drawText(dc, op.Text, (origin.X+op.X)*sc, (origin.Y+op.Y)*sc, labelFontSize*sc, accent); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawText(dc *gg.Context, text string, x, y, points float64, col color.RGBA) error {
	face, err := sceneFace(points)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawStringAnchored(text, x, y, 0.5, 0)
	return nil
}

func alpha(c color.RGBA, opacity float64) color.Color {
	opacity = min(max(opacity, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

func sceneFace(points float64) (font.Face, error) {
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
