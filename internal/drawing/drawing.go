// Package drawing holds the line drawing model and the interactive canvas
// that edits it.
package drawing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Drawing is an ordered list of lines. Later lines paint on top of earlier
// ones and win hit-tests.
type Drawing struct {
	Lines []Line `json:"lines"`
}

// Empty reports whether the drawing has no lines.
func (d Drawing) Empty() bool { return len(d.Lines) == 0 }

// Clone returns a copy that shares no storage with d.
func (d Drawing) Clone() Drawing {
	out := Drawing{Lines: make([]Line, len(d.Lines))}
	copy(out.Lines, d.Lines)
	return out
}

// MarshalJSON always emits a lines array, even for an empty drawing.
func (d Drawing) MarshalJSON() ([]byte, error) {
	lines := d.Lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(struct {
		Lines []Line `json:"lines"`
	}{lines})
}

func (d *Drawing) UnmarshalJSON(b []byte) error {
	var r struct {
		Lines *[]Line `json:"lines"`
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	if r.Lines == nil {
		return errors.New("drawing record has no lines field")
	}
	d.Lines = *r.Lines
	if d.Lines == nil {
		d.Lines = []Line{}
	}
	return nil
}

// Encode writes d as a JSON document.
func Encode(w io.Writer, d Drawing) error {
	enc := json.NewEncoder(w)
	return enc.Encode(d)
}

// Marshal returns the JSON document for d.
func Marshal(d Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a JSON drawing document. Unknown pen colours and missing line
// fields are errors.
func Decode(r io.Reader) (Drawing, error) {
	var d Drawing
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return Drawing{}, fmt.Errorf("decode drawing: %w", err)
	}
	return d, nil
}

// Unmarshal parses a JSON drawing document.
func Unmarshal(b []byte) (Drawing, error) {
	return Decode(bytes.NewReader(b))
}
