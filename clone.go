package vegalite

// Clone returns a copy sharing no mutable state with the receiver, so a spec
// handed out stays fixed while its source keeps changing. Inline dataset rows
// are the one shared layer: they are caller-owned and never written here.
func (s *Spec) Clone() *Spec {
	if s == nil {
		return nil
	}
	c := *s
	c.Width = cloneInt(s.Width)
	c.Height = cloneInt(s.Height)
	c.Data = s.Data.clone()
	c.Transform = cloneTransforms(s.Transform)
	c.Projection = s.Projection.clone()
	c.Mark = s.Mark.clone()
	c.Encoding = s.Encoding.clone()
	c.Config = s.Config.clone()
	return &c
}

func (d *Data) clone() *Data {
	if d == nil {
		return nil
	}
	c := *d
	if d.Values != nil {
		c.Values = make(Values, len(d.Values))
		copy(c.Values, d.Values)
	}
	c.Format = d.Format.clone()
	return &c
}

func (f *Format) clone() *Format {
	if f == nil {
		return nil
	}
	c := *f
	if f.Parse != nil {
		c.Parse = make(map[string]string, len(f.Parse))
		for k, v := range f.Parse {
			c.Parse[k] = v
		}
	}
	return &c
}

func (m *MarkDef) clone() *MarkDef {
	if m == nil {
		return nil
	}
	c := *m
	c.Tooltip = cloneBool(m.Tooltip)
	c.Filled = cloneBool(m.Filled)
	c.Opacity = cloneFloat(m.Opacity)
	c.Size = cloneFloat(m.Size)
	c.StrokeWidth = cloneFloat(m.StrokeWidth)
	return &c
}

func (p *Projection) clone() *Projection {
	if p == nil {
		return nil
	}
	c := *p
	c.Scale = cloneFloat(p.Scale)
	c.Center = cloneFloats(p.Center)
	c.Rotate = cloneFloats(p.Rotate)
	c.Translate = cloneFloats(p.Translate)
	return &c
}

func (e *Encoding) clone() *Encoding {
	if e == nil {
		return nil
	}
	return &Encoding{
		X:       e.X.clone(),
		Y:       e.Y.clone(),
		X2:      e.X2.clone(),
		Y2:      e.Y2.clone(),
		Color:   e.Color.clone(),
		Opacity: e.Opacity.clone(),
		Shape:   e.Shape.clone(),
		Size:    e.Size.clone(),
		Order:   e.Order.clone(),
		Tooltip: e.Tooltip.clone(),
		Text:    e.Text.clone(),
	}
}

func (ch *Channel) clone() *Channel {
	if ch == nil {
		return nil
	}
	c := *ch
	c.Scale = ch.Scale.clone()
	c.Axis = ch.Axis.clone()
	c.Legend = ch.Legend.clone()
	c.Condition = ch.Condition.clone()
	if bp, ok := ch.Bin.(*BinParams); ok {
		nb := *bp
		nb.MaxBins = cloneInt(bp.MaxBins)
		nb.Step = cloneFloat(bp.Step)
		c.Bin = &nb
	}
	return &c
}

func (s *Scale) clone() *Scale {
	if s == nil {
		return nil
	}
	c := *s
	if s.Domain != nil {
		c.Domain = append([]any(nil), s.Domain...)
	}
	if s.Range != nil {
		c.Range = append([]any(nil), s.Range...)
	}
	c.Zero = cloneBool(s.Zero)
	c.Base = cloneFloat(s.Base)
	return &c
}

func (a *Axis) clone() *Axis {
	if a == nil {
		return nil
	}
	c := *a
	c.Grid = cloneBool(a.Grid)
	c.LabelAngle = cloneFloat(a.LabelAngle)
	c.TickCount = cloneInt(a.TickCount)
	return &c
}

func (l *Legend) clone() *Legend {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func (cd *Condition) clone() *Condition {
	if cd == nil {
		return nil
	}
	c := *cd
	return &c
}

func (cf *Config) clone() *Config {
	if cf == nil {
		return nil
	}
	c := *cf
	if cf.View != nil {
		v := *cf.View
		if cf.View.Stroke != nil {
			sv := *cf.View.Stroke
			v.Stroke = &sv
		}
		c.View = &v
	}
	return &c
}

func cloneTransforms(ts []Transform) []Transform {
	if ts == nil {
		return nil
	}
	out := make([]Transform, len(ts))
	for i, t := range ts {
		if t.From != nil {
			from := *t.From
			from.Data = *from.Data.clone()
			if t.From.Fields != nil {
				from.Fields = append([]string(nil), t.From.Fields...)
			}
			t.From = &from
		}
		if t.Aggregate != nil {
			t.Aggregate = append([]AggregatedField(nil), t.Aggregate...)
		}
		if t.GroupBy != nil {
			t.GroupBy = append([]string(nil), t.GroupBy...)
		}
		out[i] = t
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloats(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	return append([]float64(nil), xs...)
}
