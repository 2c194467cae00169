package vegalite

// SchemaURL is the published JSON Schema the emitted documents are pinned to.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v4.json"

// Spec is the top-level Vega-Lite unit specification. It is a value object:
// build it (directly or through dsl), validate it, serialize it, hand it to a
// renderer. It is never mutated after construction.
type Spec struct {
	Schema      string      `json:"$schema,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Width       *int        `json:"width,omitempty"`
	Height      *int        `json:"height,omitempty"`
	Data        *Data       `json:"data,omitempty"`
	Transform   []Transform `json:"transform,omitempty"`
	Projection  *Projection `json:"projection,omitempty"`
	Mark        *MarkDef    `json:"mark,omitempty"`
	Encoding    *Encoding   `json:"encoding,omitempty"`
	Config      *Config     `json:"config,omitempty"`
}

// Config carries the small slice of top-level configuration the examples and
// CLI exercise. Extend field by field as needed; unknown grammar config is out
// of scope here.
type Config struct {
	Background string    `json:"background,omitempty"`
	View       *ViewConf `json:"view,omitempty"`
}

// ViewConf mirrors config.view.
type ViewConf struct {
	Stroke *string `json:"stroke"`
}

// Int returns a pointer to v for optional numeric fields such as Width.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for optional boolean fields.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v for optional float fields.
func Float(v float64) *float64 { return &v }
