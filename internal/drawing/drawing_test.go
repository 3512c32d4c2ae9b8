package drawing

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/example/quizdraw/internal/geom"
)

func TestEncodeSchema(t *testing.T) {
	d := Drawing{Lines: []Line{{Start: geom.Pt(1.5, -2), End: geom.Pt(3, 4), Color: Red}}}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"lines":[{"startX":1.5,"startY":-2,"endX":3,"endY":4,"color":"red"}]}`
	if string(b) != want {
		t.Fatalf("got %s\nwant %s", b, want)
	}
	empty, _ := json.Marshal(Drawing{})
	if string(empty) != `{"lines":[]}` {
		t.Fatalf("empty drawing = %s", empty)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	d := Drawing{Lines: []Line{
		{Start: geom.Pt(-10.125, 0.3), End: geom.Pt(1e-7, 99999.5), Color: Black},
		{Start: geom.Pt(5, 5), End: geom.Pt(5, 5), Color: Green},
		{Start: geom.Pt(0.1, 0.2), End: geom.Pt(-0.3, -0.4), Color: Blue},
	}}
	b, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Lines) != len(d.Lines) {
		t.Fatalf("len = %d", len(got.Lines))
	}
	for i := range d.Lines {
		if got.Lines[i] != d.Lines[i] {
			t.Errorf("line %d = %+v, want %+v", i, got.Lines[i], d.Lines[i])
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"malformed":       `{"lines":[`,
		"unknown colour":  `{"lines":[{"startX":1,"startY":1,"endX":2,"endY":2,"color":"purple"}]}`,
		"uppercase":       `{"lines":[{"startX":1,"startY":1,"endX":2,"endY":2,"color":"Red"}]}`,
		"missing field":   `{"lines":[{"startX":1,"startY":1,"endX":2,"color":"red"}]}`,
		"no lines":        `{}`,
		"string position": `{"lines":[{"startX":"1","startY":1,"endX":2,"endY":2,"color":"red"}]}`,
	}
	for name, in := range tests {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestMarshalUnknownColour(t *testing.T) {
	if _, err := Marshal(Drawing{Lines: []Line{{Color: "mauve"}}}); err == nil {
		t.Fatalf("expected error for unknown colour")
	}
}

func TestPenColorNames(t *testing.T) {
	want := []string{"Black", "Red", "Green", "Blue"}
	for i, c := range PenColors {
		if c.DisplayName() != want[i] {
			t.Errorf("%s display = %q, want %q", c, c.DisplayName(), want[i])
		}
		parsed, err := ParsePenColor(string(c))
		if err != nil || parsed != c {
			t.Errorf("ParsePenColor(%q) = %v, %v", c, parsed, err)
		}
	}
	if Red.RGBA().R != 255 || Red.RGBA().G != 59 || Blue.RGBA().B != 255 {
		t.Fatalf("unexpected render colours")
	}
}
