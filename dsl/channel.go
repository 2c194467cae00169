package dsl

import (
	vegalite "github.com/ThomAub/vega-lite-go"
)

// channelStep refines the encoding channel just added. It forwards the rest of
// the builder surface so a chain can move straight to the next channel.
type channelStep struct {
	b  *SpecBuilder
	ch *vegalite.Channel
}

func (b *SpecBuilder) encoding() *vegalite.Encoding {
	if b.spec.Encoding == nil {
		b.spec.Encoding = &vegalite.Encoding{}
	}
	return b.spec.Encoding
}

func (b *SpecBuilder) channel(slot **vegalite.Channel, field string, t vegalite.FieldType) *channelStep {
	ch := &vegalite.Channel{Field: field, Type: t}
	*slot = ch
	return &channelStep{b: b, ch: ch}
}

// X encodes field on the x position channel.
func (b *SpecBuilder) X(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().X, field, t)
}

// Y encodes field on the y position channel.
func (b *SpecBuilder) Y(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Y, field, t)
}

// X2 encodes field on the secondary x position channel.
func (b *SpecBuilder) X2(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().X2, field, t)
}

// Y2 encodes field on the secondary y position channel.
func (b *SpecBuilder) Y2(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Y2, field, t)
}

// Color encodes field on the color channel.
func (b *SpecBuilder) Color(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Color, field, t)
}

// ColorValue sets the color channel to a constant value.
func (b *SpecBuilder) ColorValue(v string) *SpecBuilder {
	b.encoding().Color = &vegalite.Channel{Value: v}
	return b
}

// Opacity encodes field on the opacity channel.
func (b *SpecBuilder) Opacity(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Opacity, field, t)
}

// Shape encodes field on the shape channel.
func (b *SpecBuilder) Shape(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Shape, field, t)
}

// Size encodes field on the size channel.
func (b *SpecBuilder) Size(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Size, field, t)
}

// Order encodes field on the order channel.
func (b *SpecBuilder) Order(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Order, field, t)
}

// Tooltip encodes field on the tooltip channel.
func (b *SpecBuilder) Tooltip(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Tooltip, field, t)
}

// Text encodes field on the text channel.
func (b *SpecBuilder) Text(field string, t vegalite.FieldType) *channelStep {
	return b.channel(&b.encoding().Text, field, t)
}

// Aggregate sets the channel's aggregation operation.
func (c *channelStep) Aggregate(a vegalite.Aggregate) *channelStep {
	c.ch.Aggregate = a
	return c
}

// TimeUnit sets the channel's temporal binning unit.
func (c *channelStep) TimeUnit(u vegalite.TimeUnit) *channelStep {
	c.ch.TimeUnit = u
	return c
}

// Bin enables default binning on the channel.
func (c *channelStep) Bin() *channelStep {
	c.ch.Bin = true
	return c
}

// BinParams enables binning with explicit parameters.
func (c *channelStep) BinParams(p vegalite.BinParams) *channelStep {
	c.ch.Bin = &p
	return c
}

// Scale sets the channel's scale.
func (c *channelStep) Scale(s vegalite.Scale) *channelStep {
	c.ch.Scale = &s
	return c
}

// Scheme sets a named color scheme on the channel's scale.
func (c *channelStep) Scheme(name string) *channelStep {
	if c.ch.Scale == nil {
		c.ch.Scale = &vegalite.Scale{}
	}
	c.ch.Scale.Scheme = name
	return c
}

// Sort sets the channel sort order ("ascending", "descending", "-fieldname").
func (c *channelStep) Sort(order string) *channelStep {
	c.ch.Sort = order
	return c
}

// Axis sets the channel's axis guide.
func (c *channelStep) Axis(a vegalite.Axis) *channelStep {
	c.ch.Axis = &a
	return c
}

// AxisTitle sets only the axis title.
func (c *channelStep) AxisTitle(t string) *channelStep {
	if c.ch.Axis == nil {
		c.ch.Axis = &vegalite.Axis{}
	}
	c.ch.Axis.Title = t
	return c
}

// Legend sets the channel's legend guide.
func (c *channelStep) Legend(l vegalite.Legend) *channelStep {
	c.ch.Legend = &l
	return c
}

// Title sets the channel title used by guides and tooltips.
func (c *channelStep) Title(t string) *channelStep {
	c.ch.Title = t
	return c
}

// Forwarders: continue the chain from a channel step.

func (c *channelStep) X(field string, t vegalite.FieldType) *channelStep  { return c.b.X(field, t) }
func (c *channelStep) Y(field string, t vegalite.FieldType) *channelStep  { return c.b.Y(field, t) }
func (c *channelStep) X2(field string, t vegalite.FieldType) *channelStep { return c.b.X2(field, t) }
func (c *channelStep) Y2(field string, t vegalite.FieldType) *channelStep { return c.b.Y2(field, t) }
func (c *channelStep) Color(field string, t vegalite.FieldType) *channelStep {
	return c.b.Color(field, t)
}
func (c *channelStep) ColorValue(v string) *SpecBuilder { return c.b.ColorValue(v) }
func (c *channelStep) Opacity(field string, t vegalite.FieldType) *channelStep {
	return c.b.Opacity(field, t)
}
func (c *channelStep) Shape(field string, t vegalite.FieldType) *channelStep {
	return c.b.Shape(field, t)
}
func (c *channelStep) Size(field string, t vegalite.FieldType) *channelStep {
	return c.b.Size(field, t)
}
func (c *channelStep) Order(field string, t vegalite.FieldType) *channelStep {
	return c.b.Order(field, t)
}
func (c *channelStep) Tooltip(field string, t vegalite.FieldType) *channelStep {
	return c.b.Tooltip(field, t)
}
func (c *channelStep) Text(field string, t vegalite.FieldType) *channelStep {
	return c.b.Text(field, t)
}
func (c *channelStep) Filter(expr string) *SpecBuilder        { return c.b.Filter(expr) }
func (c *channelStep) Calculate(expr, as string) *SpecBuilder { return c.b.Calculate(expr, as) }
func (c *channelStep) Lookup(field string, data vegalite.Data, key string, fields ...string) *SpecBuilder {
	return c.b.Lookup(field, data, key, fields...)
}
func (c *channelStep) Projection(t vegalite.ProjectionType) *SpecBuilder { return c.b.Projection(t) }
func (c *channelStep) Background(color string) *SpecBuilder              { return c.b.Background(color) }
func (c *channelStep) ViewStroke(color string) *SpecBuilder              { return c.b.ViewStroke(color) }
func (c *channelStep) NoViewStroke() *SpecBuilder                        { return c.b.NoViewStroke() }
func (c *channelStep) Width(w int) *SpecBuilder                          { return c.b.Width(w) }
func (c *channelStep) Height(h int) *SpecBuilder                         { return c.b.Height(h) }
func (c *channelStep) Build() (*vegalite.Spec, error)                    { return c.b.Build() }
func (c *channelStep) MustBuild() *vegalite.Spec                         { return c.b.MustBuild() }
