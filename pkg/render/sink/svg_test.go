package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

func integratedDrawing(t *testing.T, opts ...render.Option) render.Drawing {
	t.Helper()
	ds, ok := graph.Builtin(graph.NameIntegrated)
	if !ok {
		t.Fatal("integrated fixture missing")
	}
	return render.Draw(ds, geom.Square(400), render.Style{}, opts...)
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(integratedDrawing(t)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element, got prefix %q", svg[:40])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing svg tag")
	}
	if got := strings.Count(svg, "<line "); got != 10 {
		t.Errorf("line count = %d, want 10", got)
	}
	if got := strings.Count(svg, "<circle "); got != 6 {
		t.Errorf("circle count = %d, want 6", got)
	}
}

func TestRenderSVGEdgesBelowNodes(t *testing.T) {
	svg := string(RenderSVG(integratedDrawing(t)))

	lastLine := strings.LastIndex(svg, "<line ")
	firstCircle := strings.Index(svg, "<circle ")
	if lastLine == -1 || firstCircle == -1 {
		t.Fatal("expected both line and circle elements")
	}
	if lastLine > firstCircle {
		t.Errorf("line at %d appears after first circle at %d", lastLine, firstCircle)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	d := integratedDrawing(t)
	if !bytes.Equal(RenderSVG(d), RenderSVG(d)) {
		t.Error("repeated renders differ")
	}
}

func TestRenderSVGBackground(t *testing.T) {
	d := integratedDrawing(t)

	plain := string(RenderSVG(d))
	if strings.Contains(plain, "<rect") {
		t.Error("unexpected background rect without option")
	}

	filled := string(RenderSVG(d, WithBackground("#FDF6E3")))
	if !strings.Contains(filled, `<rect width="100%" height="100%" fill="#FDF6E3"/>`) {
		t.Error("missing background rect")
	}
}

func TestRenderSVGTitleEscaped(t *testing.T) {
	d := integratedDrawing(t)
	d.Style.Title = `Split <both> & "severed"`

	svg := string(RenderSVG(d))
	if !strings.Contains(svg, "Split &lt;both&gt; &amp; &#34;severed&#34;") {
		t.Errorf("title not escaped:\n%s", svg)
	}
	if strings.Contains(svg, "<both>") {
		t.Error("raw angle brackets leaked into markup")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	svg := string(RenderSVG(integratedDrawing(t, render.WithLabels())))

	if got := strings.Count(svg, "<text "); got != 6 {
		t.Errorf("text count = %d, want 6", got)
	}
	if !strings.Contains(svg, ">Thalamus</text>") {
		t.Error("missing Thalamus label")
	}
	if !strings.Contains(svg, defaultFontFamily) {
		t.Error("missing default font family")
	}
}

func TestRenderSVGEmptyDrawing(t *testing.T) {
	d := render.Draw(graph.Dataset{Name: "empty"}, geom.Square(200), render.Style{})
	svg := string(RenderSVG(d))

	if strings.Contains(svg, "<line ") || strings.Contains(svg, "<circle ") {
		t.Error("empty dataset produced drawing elements")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}
