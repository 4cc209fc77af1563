package sink

import (
	"encoding/json"
	"fmt"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

type jsonDrawing struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Color       string   `json:"color"`
	Title       string   `json:"title,omitempty"`
	StrokeWidth float64  `json:"stroke_width"`
	NodeRadius  float64  `json:"node_radius"`
	EdgeOpacity float64  `json:"edge_opacity"`
	NodeOpacity float64  `json:"node_opacity"`
	Ops         []jsonOp `json:"ops"`
}

type jsonOp struct {
	Kind    string  `json:"kind"`
	X1      float64 `json:"x1,omitempty"`
	Y1      float64 `json:"y1,omitempty"`
	X2      float64 `json:"x2,omitempty"`
	Y2      float64 `json:"y2,omitempty"`
	Source  int     `json:"source,omitempty"`
	Target  int     `json:"target,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	R       float64 `json:"r,omitempty"`
	Node    int     `json:"node,omitempty"`
	Text    string  `json:"text,omitempty"`
	Opacity float64 `json:"opacity"`
}

var kindToString = map[render.OpKind]string{
	render.OpLine: "line",
	render.OpDisk: "disk",
	render.OpText: "text",
}

var kindFromString = map[string]render.OpKind{
	"line": render.OpLine,
	"disk": render.OpDisk,
	"text": render.OpText,
}

// RenderJSON exports a drawing as a pretty-printed JSON document. The op
// sequence is preserved verbatim, so external tools can replay it with the
// same z-order a native sink would produce. [ParseJSON] is the inverse.
func RenderJSON(d render.Drawing) ([]byte, error) {
	out := jsonDrawing{
		Width:       d.Width,
		Height:      d.Height,
		Color:       d.Style.Color,
		Title:       d.Style.Title,
		StrokeWidth: d.Style.StrokeWidth,
		NodeRadius:  d.Style.NodeRadius,
		EdgeOpacity: d.Style.EdgeOpacity,
		NodeOpacity: d.Style.NodeOpacity,
		Ops:         make([]jsonOp, 0, len(d.Ops)),
	}
	for _, op := range d.Ops {
		out.Ops = append(out.Ops, jsonOp{
			Kind:    kindToString[op.Kind],
			X1:      op.X1,
			Y1:      op.Y1,
			X2:      op.X2,
			Y2:      op.Y2,
			Source:  op.Source,
			Target:  op.Target,
			X:       op.X,
			Y:       op.Y,
			R:       op.R,
			Node:    op.Node,
			Text:    op.Text,
			Opacity: op.Opacity,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// ParseJSON reconstructs a drawing previously exported with [RenderJSON].
func ParseJSON(data []byte) (render.Drawing, error) {
	var in jsonDrawing
	if err := json.Unmarshal(data, &in); err != nil {
		return render.Drawing{}, fmt.Errorf("decode: %w", err)
	}
	d := render.Drawing{
		Width:  in.Width,
		Height: in.Height,
		Style: render.Style{
			Color:       in.Color,
			Title:       in.Title,
			StrokeWidth: in.StrokeWidth,
			NodeRadius:  in.NodeRadius,
			EdgeOpacity: in.EdgeOpacity,
			NodeOpacity: in.NodeOpacity,
		},
		Ops: make([]render.Op, 0, len(in.Ops)),
	}
	for i, op := range in.Ops {
		kind, ok := kindFromString[op.Kind]
		if !ok {
			return render.Drawing{}, fmt.Errorf("op %d: unknown kind %q", i, op.Kind)
		}
		d.Ops = append(d.Ops, render.Op{
			Kind:    kind,
			X1:      op.X1,
			Y1:      op.Y1,
			X2:      op.X2,
			Y2:      op.Y2,
			Source:  op.Source,
			Target:  op.Target,
			X:       op.X,
			Y:       op.Y,
			R:       op.R,
			Node:    op.Node,
			Text:    op.Text,
			Opacity: op.Opacity,
		})
	}
	return d, nil
}
