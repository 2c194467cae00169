package vegalite

// Values is an inline dataset: one map per row, keyed by column name.
type Values []map[string]any

// Data references the tabular input of a spec (or of a lookup transform).
// Exactly one of URL, Values, or Name may be set.
type Data struct {
	URL    string  `json:"url,omitempty"`
	Values Values  `json:"values,omitempty"`
	Name   string  `json:"name,omitempty"`
	Format *Format `json:"format,omitempty"`
}

// FormatType enumerates the parsers the grammar can apply to a data reference.
type FormatType string

const (
	JSON     FormatType = "json"
	CSV      FormatType = "csv"
	TSV      FormatType = "tsv"
	TopoJSON FormatType = "topojson"
	DSV      FormatType = "dsv"
)

// Format describes how a data reference is parsed. Feature and Mesh apply to
// topojson only; Parse pins per-field parse hints (for example date formats).
type Format struct {
	Type      FormatType        `json:"type,omitempty"`
	Feature   string            `json:"feature,omitempty"`
	Mesh      string            `json:"mesh,omitempty"`
	Delimiter string            `json:"delimiter,omitempty"`
	Parse     map[string]string `json:"parse,omitempty"`
}

// URLData returns a Data referencing a remote or local document by URL.
func URLData(url string) *Data { return &Data{URL: url} }

// InlineData returns a Data carrying the rows inline in the spec.
func InlineData(values Values) *Data { return &Data{Values: values} }

// NamedData returns a Data resolved by name at render time.
func NamedData(name string) *Data { return &Data{Name: name} }
