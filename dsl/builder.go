package dsl

import (
	vegalite "github.com/ThomAub/vega-lite-go"
)

// SpecBuilder accumulates a spec through chained calls. Zero value is not
// usable; start with New.
type SpecBuilder struct {
	spec vegalite.Spec
}

// New creates a builder pinned to the v4 schema URL.
func New() *SpecBuilder {
	return &SpecBuilder{spec: vegalite.Spec{Schema: vegalite.SchemaURL}}
}

// Title sets the chart title.
func (b *SpecBuilder) Title(t string) *SpecBuilder {
	b.spec.Title = t
	return b
}

// Description sets the chart description.
func (b *SpecBuilder) Description(d string) *SpecBuilder {
	b.spec.Description = d
	return b
}

// Width sets an explicit view width in pixels.
func (b *SpecBuilder) Width(w int) *SpecBuilder {
	b.spec.Width = vegalite.Int(w)
	return b
}

// Height sets an explicit view height in pixels.
func (b *SpecBuilder) Height(h int) *SpecBuilder {
	b.spec.Height = vegalite.Int(h)
	return b
}

// Background sets the chart background color via config.
func (b *SpecBuilder) Background(color string) *SpecBuilder {
	b.config().Background = color
	return b
}

// ViewStroke sets the view border color via config.
func (b *SpecBuilder) ViewStroke(color string) *SpecBuilder {
	b.config().View = &vegalite.ViewConf{Stroke: &color}
	return b
}

// NoViewStroke removes the view border by pinning config.view.stroke to null.
func (b *SpecBuilder) NoViewStroke() *SpecBuilder {
	b.config().View = &vegalite.ViewConf{}
	return b
}

func (b *SpecBuilder) config() *vegalite.Config {
	if b.spec.Config == nil {
		b.spec.Config = &vegalite.Config{}
	}
	return b.spec.Config
}

// Data sets an already constructed data reference.
func (b *SpecBuilder) Data(d *vegalite.Data) *SpecBuilder {
	b.spec.Data = d
	return b
}

// DataURL references data by URL. The returned step refines the format.
func (b *SpecBuilder) DataURL(url string) *dataStep {
	b.spec.Data = vegalite.URLData(url)
	return &dataStep{b}
}

// DataValues carries the rows inline in the spec.
func (b *SpecBuilder) DataValues(v vegalite.Values) *SpecBuilder {
	b.spec.Data = vegalite.InlineData(v)
	return b
}

// DataName references a dataset resolved by name at render time.
func (b *SpecBuilder) DataName(name string) *SpecBuilder {
	b.spec.Data = vegalite.NamedData(name)
	return b
}

// Mark sets the mark in its short form.
func (b *SpecBuilder) Mark(t vegalite.MarkType) *SpecBuilder {
	b.spec.Mark = &vegalite.MarkDef{Type: t}
	return b
}

// MarkDef sets the mark and returns a step for mark properties.
func (b *SpecBuilder) MarkDef(t vegalite.MarkType) *markStep {
	b.spec.Mark = &vegalite.MarkDef{Type: t}
	return &markStep{b}
}

// Filter appends a filter transform keeping rows matching expr.
func (b *SpecBuilder) Filter(expr string) *SpecBuilder {
	b.spec.Transform = append(b.spec.Transform, vegalite.FilterTransform(expr))
	return b
}

// Calculate appends a calculate transform deriving field as from expr.
func (b *SpecBuilder) Calculate(expr, as string) *SpecBuilder {
	b.spec.Transform = append(b.spec.Transform, vegalite.CalculateTransform(expr, as))
	return b
}

// Lookup appends a lookup transform joining fields from data on key.
func (b *SpecBuilder) Lookup(field string, data vegalite.Data, key string, fields ...string) *SpecBuilder {
	b.spec.Transform = append(b.spec.Transform, vegalite.LookupTransform(field, data, key, fields...))
	return b
}

// Transform appends an already constructed transform entry.
func (b *SpecBuilder) Transform(tr vegalite.Transform) *SpecBuilder {
	b.spec.Transform = append(b.spec.Transform, tr)
	return b
}

// Projection sets the cartographic projection for geoshape marks.
func (b *SpecBuilder) Projection(t vegalite.ProjectionType) *SpecBuilder {
	b.spec.Projection = &vegalite.Projection{Type: t}
	return b
}

// ProjectionDef sets a fully specified projection.
func (b *SpecBuilder) ProjectionDef(p vegalite.Projection) *SpecBuilder {
	b.spec.Projection = &p
	return b
}

// Build validates the accumulated spec and returns it as a value object.
// The result is detached from the builder: continuing the chain afterwards
// never touches a spec already handed out. Validation failures are returned
// as vegalite.Issues.
func (b *SpecBuilder) Build() (*vegalite.Spec, error) {
	spec := b.spec.Clone()
	if spec.Schema == "" {
		spec.Schema = vegalite.SchemaURL
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// MustBuild is Build for specs known to be well formed; it panics on error.
func (b *SpecBuilder) MustBuild() *vegalite.Spec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}

// dataStep refines the format of the data reference just set.
type dataStep struct {
	*SpecBuilder
}

// FormatCSV marks the referenced document as CSV.
func (d *dataStep) FormatCSV() *dataStep {
	d.format().Type = vegalite.CSV
	return d
}

// FormatTSV marks the referenced document as TSV.
func (d *dataStep) FormatTSV() *dataStep {
	d.format().Type = vegalite.TSV
	return d
}

// FormatJSON marks the referenced document as JSON.
func (d *dataStep) FormatJSON() *dataStep {
	d.format().Type = vegalite.JSON
	return d
}

// TopoJSONFeature marks the document as TopoJSON and extracts the named
// feature object.
func (d *dataStep) TopoJSONFeature(feature string) *dataStep {
	f := d.format()
	f.Type = vegalite.TopoJSON
	f.Feature = feature
	return d
}

// TopoJSONMesh marks the document as TopoJSON and extracts the named mesh.
func (d *dataStep) TopoJSONMesh(mesh string) *dataStep {
	f := d.format()
	f.Type = vegalite.TopoJSON
	f.Mesh = mesh
	return d
}

// Parse pins per-field parse hints on the format.
func (d *dataStep) Parse(hints map[string]string) *dataStep {
	d.format().Parse = hints
	return d
}

func (d *dataStep) format() *vegalite.Format {
	if d.spec.Data.Format == nil {
		d.spec.Data.Format = &vegalite.Format{}
	}
	return d.spec.Data.Format
}

// markStep refines properties of the mark just set.
type markStep struct {
	*SpecBuilder
}

func (m *markStep) Tooltip(on bool) *markStep {
	m.spec.Mark.Tooltip = vegalite.Bool(on)
	return m
}

func (m *markStep) Filled(on bool) *markStep {
	m.spec.Mark.Filled = vegalite.Bool(on)
	return m
}

func (m *markStep) Color(c string) *markStep {
	m.spec.Mark.Color = c
	return m
}

func (m *markStep) Opacity(o float64) *markStep {
	m.spec.Mark.Opacity = vegalite.Float(o)
	return m
}

func (m *markStep) Size(s float64) *markStep {
	m.spec.Mark.Size = vegalite.Float(s)
	return m
}

func (m *markStep) Interpolate(kind string) *markStep {
	m.spec.Mark.Interpolate = kind
	return m
}

func (m *markStep) Stroke(c string) *markStep {
	m.spec.Mark.Stroke = c
	return m
}

func (m *markStep) StrokeWidth(w float64) *markStep {
	m.spec.Mark.StrokeWidth = vegalite.Float(w)
	return m
}
