package vegalite

import (
	"github.com/goccy/go-json"
)

// MarkType is the geometric primitive used to render data.
type MarkType string

const (
	Area     MarkType = "area"
	Bar      MarkType = "bar"
	Circle   MarkType = "circle"
	Geoshape MarkType = "geoshape"
	Line     MarkType = "line"
	Point    MarkType = "point"
	Rect     MarkType = "rect"
	Rule     MarkType = "rule"
	Square   MarkType = "square"
	Text     MarkType = "text"
	Tick     MarkType = "tick"
)

var markTypes = map[MarkType]struct{}{
	Area: {}, Bar: {}, Circle: {}, Geoshape: {}, Line: {}, Point: {},
	Rect: {}, Rule: {}, Square: {}, Text: {}, Tick: {},
}

// MarkDef is the mark with optional properties. When only Type is set it
// serializes to the grammar's short form, a bare string.
type MarkDef struct {
	Type        MarkType `json:"type"`
	Tooltip     *bool    `json:"tooltip,omitempty"`
	Filled      *bool    `json:"filled,omitempty"`
	Color       string   `json:"color,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Interpolate string   `json:"interpolate,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
}

func (m MarkDef) shortForm() bool {
	return m.Tooltip == nil && m.Filled == nil && m.Color == "" &&
		m.Opacity == nil && m.Size == nil && m.Interpolate == "" &&
		m.Stroke == "" && m.StrokeWidth == nil
}

// MarshalJSON emits the bare-string short form when no mark properties are set.
func (m MarkDef) MarshalJSON() ([]byte, error) {
	if m.shortForm() {
		return json.Marshal(string(m.Type))
	}
	type markDef MarkDef // avoid recursion
	return json.Marshal(markDef(m))
}

// UnmarshalJSON accepts both the bare-string and the object form.
func (m *MarkDef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = MarkDef{Type: MarkType(s)}
		return nil
	}
	type markDef MarkDef
	var md markDef
	if err := json.Unmarshal(b, &md); err != nil {
		return err
	}
	*m = MarkDef(md)
	return nil
}
