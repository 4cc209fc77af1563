package render

import (
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// Default style values, applied by [Draw] wherever the caller leaves a
// Style field at its zero value.
const (
	// DefaultColor is the accent used when no color is configured.
	DefaultColor = "#2E86AB"

	// DefaultStrokeWidth is the edge line width in surface units.
	DefaultStrokeWidth = 1.5

	// DefaultNodeRadius is the node disk radius in surface units.
	DefaultNodeRadius = 7.0

	// DefaultEdgeOpacity keeps edges visually behind the nodes.
	DefaultEdgeOpacity = 0.35

	// DefaultNodeOpacity draws node disks fully opaque.
	DefaultNodeOpacity = 1.0
)

// Style carries the cosmetic rendering inputs. The only load-bearing field
// is Color, the single accent everything is drawn in; the rest is trim.
// Zero values resolve to the package defaults, and the defaults keep edge
// opacity below node opacity so nodes visually dominate.
type Style struct {
	Color       string  // Hex accent color ("#RGB" or "#RRGGBB")
	Title       string  // Optional caption, rendered by sinks, not by Draw
	StrokeWidth float64 // Edge line width
	NodeRadius  float64 // Node disk radius
	EdgeOpacity float64 // Edge alpha in [0, 1]
	NodeOpacity float64 // Node alpha in [0, 1]
}

// Resolved returns a copy of the style with every zero field replaced by
// its default. Draw applies this once; sinks can rely on resolved values.
func (s Style) Resolved() Style {
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = DefaultStrokeWidth
	}
	if s.NodeRadius == 0 {
		s.NodeRadius = DefaultNodeRadius
	}
	if s.EdgeOpacity == 0 {
		s.EdgeOpacity = DefaultEdgeOpacity
	}
	if s.NodeOpacity == 0 {
		s.NodeOpacity = DefaultNodeOpacity
	}
	return s
}

// OpKind discriminates the drawing command variants in a [Drawing].
type OpKind int

const (
	// OpLine is an edge segment between two node centers.
	OpLine OpKind = iota
	// OpDisk is a filled node disk.
	OpDisk
	// OpText is an optional node label anchored above its disk.
	OpText
)

// Op is a single drawing command in surface coordinates. Which fields are
// meaningful depends on Kind: lines use the endpoint pairs plus Source and
// Target, disks use the center, radius, and Node, text uses the anchor,
// Node, and Text.
type Op struct {
	Kind OpKind

	X1, Y1 float64 // Line start (source node center)
	X2, Y2 float64 // Line end (target node center)
	Source int     // Node ID behind the line start
	Target int     // Node ID behind the line end

	X, Y float64 // Disk center or text anchor
	R    float64 // Disk radius
	Node int     // Node ID behind a disk or text op

	Text    string  // Label content for text ops
	Opacity float64 // Alpha in [0, 1]
}

// Drawing is the output of [Draw]: an ordered drawing command sequence in
// surface coordinates, ready for any sink. The op order is the z-order —
// every line precedes every disk, so nodes always paint over edges — and
// for a given dataset, size, and style the sequence is identical on every
// call.
type Drawing struct {
	Width  float64 // Surface width actually drawn
	Height float64 // Surface height actually drawn
	Style  Style   // Resolved style (defaults applied)
	Ops    []Op    // Lines, then disks, then optional labels
}

// Lines returns the line ops in draw order.
func (d Drawing) Lines() []Op { return d.byKind(OpLine) }

// Disks returns the disk ops in draw order.
func (d Drawing) Disks() []Op { return d.byKind(OpDisk) }

// Texts returns the label ops in draw order.
func (d Drawing) Texts() []Op { return d.byKind(OpText) }

func (d Drawing) byKind(k OpKind) []Op {
	var ops []Op
	for _, op := range d.Ops {
		if op.Kind == k {
			ops = append(ops, op)
		}
	}
	return ops
}

// Option configures a single Draw call.
type Option func(*drawer)

type drawer struct {
	stretch bool
	labels  bool
}

// WithStretch scales the two axes independently so the drawing fills the
// whole rectangular surface. The default targets a square region with side
// min(width, height), which preserves the dataset's aspect ratio.
func WithStretch() Option { return func(r *drawer) { r.stretch = true } }

// WithLabels appends a text op per labeled node after the disks. Labels
// are cosmetic; nothing requires a sink to draw them.
func WithLabels() Option { return func(r *drawer) { r.labels = true } }

// Draw converts a dataset into a drawing command sequence for the given
// surface.
//
// Draw is stateless and deterministic: it reads nothing but its arguments,
// mutates nothing, and produces the same Drawing for the same inputs every
// time, so rendering twice is indistinguishable from rendering once.
//
// Edges are emitted first, in dataset order. An edge whose source or
// target is missing from the node set is skipped silently — no error, no
// log — and every other edge and node still renders. Nodes are emitted
// after all edges, one uniform disk each, again in dataset order. Empty
// node or edge lists simply produce fewer ops.
func Draw(ds graph.Dataset, size geom.Size, style Style, opts ...Option) Drawing {
	var r drawer
	for _, opt := range opts {
		opt(&r)
	}

	st := style.Resolved()

	width, height := size.Min(), size.Min()
	if r.stretch {
		width, height = size.Width, size.Height
	}
	pos := func(p geom.Point) geom.Point {
		if r.stretch {
			return geom.ScaleTo(p, size)
		}
		return geom.Scale(p, size.Min())
	}

	idx := ds.NodeIndex()
	ops := make([]Op, 0, len(ds.Edges)+2*len(ds.Nodes))

	for _, e := range ds.Edges {
		src, okS := idx[e.Source]
		dst, okD := idx[e.Target]
		if !okS || !okD {
			continue
		}
		a, b := pos(src.Position), pos(dst.Position)
		ops = append(ops, Op{
			Kind:    OpLine,
			X1:      a.X,
			Y1:      a.Y,
			X2:      b.X,
			Y2:      b.Y,
			Source:  e.Source,
			Target:  e.Target,
			Opacity: st.EdgeOpacity,
		})
	}

	for _, n := range ds.Nodes {
		c := pos(n.Position)
		ops = append(ops, Op{
			Kind:    OpDisk,
			X:       c.X,
			Y:       c.Y,
			R:       st.NodeRadius,
			Node:    n.ID,
			Opacity: st.NodeOpacity,
		})
	}

	if r.labels {
		for _, n := range ds.Nodes {
			if n.Label == "" {
				continue
			}
			c := pos(n.Position)
			ops = append(ops, Op{
				Kind:    OpText,
				X:       c.X,
				Y:       c.Y - st.NodeRadius - 4,
				Node:    n.ID,
				Text:    n.Label,
				Opacity: st.NodeOpacity,
			})
		}
	}

	return Drawing{Width: width, Height: height, Style: st, Ops: ops}
}
