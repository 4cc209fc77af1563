package cli

import (
	"math"
	"strings"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// nodeGlyph marks a node cell on the canvas.
const nodeGlyph = '●'

// asciiCanvas is a fixed-size rune grid used by the explore view to draw
// networks in the terminal. The origin is the top-left corner; y grows
// downward, matching the normalized dataset coordinates.
type asciiCanvas struct {
	width  int
	height int
	cells  [][]rune
}

// newCanvas creates a canvas of at least 1x1 cells, filled with spaces.
func newCanvas(width, height int) *asciiCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &asciiCanvas{width: width, height: height, cells: cells}
}

// set places r at (x, y). Points outside the grid are ignored.
func (cv *asciiCanvas) set(x, y int, r rune) {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return
	}
	cv.cells[y][x] = r
}

// line draws a straight segment from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. The whole segment uses one rune picked from its direction.
func (cv *asciiCanvas) line(x0, y0, x1, y1 int) {
	r := segmentRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		cv.set(x, y, r)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// text writes s horizontally starting at (x, y), clipping at the edges.
func (cv *asciiCanvas) text(x, y int, s string) {
	for i, r := range []rune(s) {
		cv.set(x+i, y, r)
	}
}

// String joins the grid into newline-separated rows.
func (cv *asciiCanvas) String() string {
	var b strings.Builder
	b.Grow((cv.width + 1) * cv.height)
	for y, row := range cv.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// segmentRune picks the box-drawing rune that best matches a direction.
// y grows downward, so deltas with the same sign slope like '╲'.
func segmentRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawNetwork renders the dataset onto a fresh canvas of the given size.
// Edges are drawn first so node glyphs and labels stay visible on top,
// the same z-order the SVG renderer uses.
func drawNetwork(ds graph.Dataset, width, height int, labels bool) string {
	cv := newCanvas(width, height)
	idx := ds.NodeIndex()

	at := func(n graph.Node) (int, int) {
		x := int(math.Round(n.Position.X * float64(cv.width-1)))
		y := int(math.Round(n.Position.Y * float64(cv.height-1)))
		return x, y
	}

	for _, e := range ds.Edges {
		src, okSrc := idx[e.Source]
		dst, okDst := idx[e.Target]
		if !okSrc || !okDst {
			continue
		}
		x0, y0 := at(src)
		x1, y1 := at(dst)
		cv.line(x0, y0, x1, y1)
	}

	for _, n := range ds.Nodes {
		x, y := at(n)
		cv.set(x, y, nodeGlyph)
		if labels && n.Label != "" {
			cv.text(x-len([]rune(n.Label))/2, y-1, n.Label)
		}
	}

	return cv.String()
}
