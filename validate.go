package vegalite

import "fmt"

// Validate checks the invariants the grammar relies on before a spec is handed
// to a renderer. All violations are collected and returned together as Issues;
// a nil return means the spec is well formed with respect to this model.
//
// The checks mirror what the published schema would reject for the constructs
// this model covers: data source exclusivity, enum membership, channel field
// presence, and transform shape.
func (s *Spec) Validate() error {
	var iss Issues

	if s.Data == nil {
		iss = AppendIssues(iss, Issue{Path: "/data", Code: CodeRequired, Message: "spec needs a data reference"})
	} else {
		iss = append(iss, validateData("/data", s.Data)...)
	}

	if s.Mark == nil {
		iss = AppendIssues(iss, Issue{Path: "/mark", Code: CodeRequired, Message: "spec needs a mark"})
	} else if _, ok := markTypes[s.Mark.Type]; !ok {
		iss = AppendIssues(iss, Issue{
			Path: "/mark/type", Code: CodeInvalidEnum,
			Message: fmt.Sprintf("unknown mark type %q", s.Mark.Type),
		})
	}

	if s.Encoding != nil {
		for _, c := range namedChannels(s.Encoding) {
			iss = append(iss, validateChannel("/encoding/"+c.name, c.ch)...)
		}
	}

	for i, tr := range s.Transform {
		iss = append(iss, validateTransform(fmt.Sprintf("/transform/%d", i), tr)...)
	}

	if s.Projection != nil && s.Projection.Type != "" {
		if _, ok := projectionTypes[s.Projection.Type]; !ok {
			iss = AppendIssues(iss, Issue{
				Path: "/projection/type", Code: CodeInvalidEnum,
				Message: fmt.Sprintf("unknown projection type %q", s.Projection.Type),
			})
		}
	}

	if len(iss) > 0 {
		return iss
	}
	return nil
}

type namedChannel struct {
	name string
	ch   *Channel
}

func namedChannels(e *Encoding) []namedChannel {
	all := []namedChannel{
		{"x", e.X}, {"y", e.Y}, {"x2", e.X2}, {"y2", e.Y2},
		{"color", e.Color}, {"opacity", e.Opacity}, {"shape", e.Shape},
		{"size", e.Size}, {"order", e.Order}, {"tooltip", e.Tooltip},
		{"text", e.Text},
	}
	out := all[:0]
	for _, c := range all {
		if c.ch != nil {
			out = append(out, c)
		}
	}
	return out
}

func validateData(path string, d *Data) Issues {
	var iss Issues
	set := 0
	for _, present := range []bool{d.URL != "", d.Values != nil, d.Name != ""} {
		if present {
			set++
		}
	}
	switch {
	case set == 0:
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeRequired, Message: "data needs one of url, values, name"})
	case set > 1:
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeConflict, Message: "data allows only one of url, values, name"})
	}
	if f := d.Format; f != nil {
		if f.Type != "" {
			switch f.Type {
			case JSON, CSV, TSV, TopoJSON, DSV:
			default:
				iss = AppendIssues(iss, Issue{
					Path: path + "/format/type", Code: CodeInvalidEnum,
					Message: fmt.Sprintf("unknown format type %q", f.Type),
				})
			}
		}
		if (f.Feature != "" || f.Mesh != "") && f.Type != TopoJSON {
			iss = AppendIssues(iss, Issue{
				Path: path + "/format", Code: CodeConflict,
				Message: "feature/mesh require format type topojson",
			})
		}
		if f.Feature != "" && f.Mesh != "" {
			iss = AppendIssues(iss, Issue{
				Path: path + "/format", Code: CodeConflict,
				Message: "feature and mesh are mutually exclusive",
			})
		}
		if f.Type == TopoJSON && f.Feature == "" && f.Mesh == "" {
			iss = AppendIssues(iss, Issue{
				Path: path + "/format", Code: CodeInvalidReference,
				Message: "topojson references no feature or mesh object",
			})
		}
	}
	return iss
}

func validateChannel(path string, c *Channel) Issues {
	var iss Issues
	if c.Field == "" && c.Value == nil && c.Aggregate != Count {
		iss = AppendIssues(iss, Issue{
			Path: path + "/field", Code: CodeRequired,
			Message: "channel needs a field, a value, or aggregate count",
		})
	}
	if c.Type != "" {
		if _, ok := fieldTypes[c.Type]; !ok {
			iss = AppendIssues(iss, Issue{
				Path: path + "/type", Code: CodeInvalidEnum,
				Message: fmt.Sprintf("unknown field type %q", c.Type),
			})
		}
	}
	if c.Aggregate != "" {
		if _, ok := aggregates[c.Aggregate]; !ok {
			iss = AppendIssues(iss, Issue{
				Path: path + "/aggregate", Code: CodeInvalidEnum,
				Message: fmt.Sprintf("unknown aggregate %q", c.Aggregate),
			})
		}
	}
	if c.TimeUnit != "" {
		if _, ok := timeUnits[c.TimeUnit]; !ok {
			iss = AppendIssues(iss, Issue{
				Path: path + "/timeUnit", Code: CodeInvalidEnum,
				Message: fmt.Sprintf("unknown time unit %q", c.TimeUnit),
			})
		}
		if c.Type != Temporal && c.Type != Ordinal && c.Type != "" {
			iss = AppendIssues(iss, Issue{
				Path: path + "/timeUnit", Code: CodeConflict,
				Message: "timeUnit applies to temporal or ordinal fields",
			})
		}
	}
	return iss
}

func validateTransform(path string, tr Transform) Issues {
	var iss Issues
	kinds := 0
	for _, present := range []bool{
		tr.Filter != "", tr.Calculate != "", tr.Lookup != "", tr.Aggregate != nil,
	} {
		if present {
			kinds++
		}
	}
	switch {
	case kinds == 0:
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeRequired, Message: "empty transform entry"})
	case kinds > 1:
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeConflict, Message: "transform entry mixes variants"})
		return iss
	}
	if tr.Calculate != "" && tr.As == "" {
		iss = AppendIssues(iss, Issue{Path: path + "/as", Code: CodeRequired, Message: "calculate needs an output field"})
	}
	if tr.Lookup != "" {
		if tr.From == nil {
			iss = AppendIssues(iss, Issue{Path: path + "/from", Code: CodeRequired, Message: "lookup needs a secondary data reference"})
		} else {
			if tr.From.Key == "" {
				iss = AppendIssues(iss, Issue{Path: path + "/from/key", Code: CodeRequired, Message: "lookup needs a key field"})
			}
			iss = append(iss, validateData(path+"/from/data", &tr.From.Data)...)
		}
	}
	for j, af := range tr.Aggregate {
		p := fmt.Sprintf("%s/aggregate/%d", path, j)
		if _, ok := aggregates[af.Op]; !ok {
			iss = AppendIssues(iss, Issue{
				Path: p + "/op", Code: CodeInvalidEnum,
				Message: fmt.Sprintf("unknown aggregate op %q", af.Op),
			})
		}
		if af.As == "" {
			iss = AppendIssues(iss, Issue{Path: p + "/as", Code: CodeRequired, Message: "aggregated field needs an output name"})
		}
		if af.Field == "" && af.Op != Count {
			iss = AppendIssues(iss, Issue{Path: p + "/field", Code: CodeRequired, Message: "aggregate op needs a source field"})
		}
	}
	return iss
}
