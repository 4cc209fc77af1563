package sink

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/render"
)

func TestRenderJSONRoundTrip(t *testing.T) {
	d := integratedDrawing(t, render.WithLabels())
	d.Style.Title = "Integrated network"

	data, err := RenderJSON(d)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error: %v", err)
	}
	if !reflect.DeepEqual(back, d) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", back, d)
	}
}

func TestRenderJSONShape(t *testing.T) {
	data, err := RenderJSON(integratedDrawing(t))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonDrawing
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 400 || out.Height != 400 {
		t.Errorf("surface = %vx%v, want 400x400", out.Width, out.Height)
	}
	if out.Color != render.DefaultColor {
		t.Errorf("color = %q, want %q", out.Color, render.DefaultColor)
	}

	counts := map[string]int{}
	for _, op := range out.Ops {
		counts[op.Kind]++
	}
	if counts["line"] != 10 {
		t.Errorf("line ops = %d, want 10", counts["line"])
	}
	if counts["disk"] != 6 {
		t.Errorf("disk ops = %d, want 6", counts["disk"])
	}
	if len(out.Ops) > 0 && out.Ops[0].Kind != "line" {
		t.Errorf("first op kind = %q, want line", out.Ops[0].Kind)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "Malformed", data: `{"width": `, want: "decode"},
		{
			name: "UnknownKind",
			data: `{"width": 10, "height": 10, "color": "#fff", "ops": [{"kind": "wedge", "opacity": 1}]}`,
			want: `unknown kind "wedge"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseJSON() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}
