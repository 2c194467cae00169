package vegalite

// Transform is one entry of the spec's transform pipeline. Exactly one of the
// variants (Filter, Calculate, Lookup, Aggregate) may be populated per entry;
// Validate rejects mixed entries because the grammar dispatches on shape.
type Transform struct {
	// Filter keeps rows for which the expression evaluates truthy,
	// e.g. "datum.symbol==='GOOG'".
	Filter string `json:"filter,omitempty"`

	// Calculate derives a new field named As from the expression.
	Calculate string `json:"calculate,omitempty"`
	As        string `json:"as,omitempty"`

	// Lookup joins fields from a secondary data reference on the named key.
	Lookup string      `json:"lookup,omitempty"`
	From   *LookupData `json:"from,omitempty"`

	// Aggregate summarizes rows grouped by GroupBy.
	Aggregate []AggregatedField `json:"aggregate,omitempty"`
	GroupBy   []string          `json:"groupby,omitempty"`
}

// LookupData is the secondary side of a lookup join.
type LookupData struct {
	Data   Data     `json:"data"`
	Key    string   `json:"key"`
	Fields []string `json:"fields,omitempty"`
}

// AggregatedField is one output column of an aggregate transform.
type AggregatedField struct {
	Op    Aggregate `json:"op"`
	Field string    `json:"field,omitempty"`
	As    string    `json:"as"`
}

// FilterTransform returns a transform keeping rows matching the expression.
func FilterTransform(expr string) Transform { return Transform{Filter: expr} }

// CalculateTransform returns a transform deriving field as from expr.
func CalculateTransform(expr, as string) Transform {
	return Transform{Calculate: expr, As: as}
}

// LookupTransform returns a transform joining fields from data on key.
func LookupTransform(field string, data Data, key string, fields ...string) Transform {
	return Transform{Lookup: field, From: &LookupData{Data: data, Key: key, Fields: fields}}
}
