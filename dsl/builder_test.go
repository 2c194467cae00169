package dsl_test

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	vegalite "github.com/ThomAub/vega-lite-go"
	"github.com/ThomAub/vega-lite-go/dsl"
)

func jsonEqual(t *testing.T, spec *vegalite.Spec, want string) {
	t.Helper()
	b, err := spec.JSON()
	if err != nil {
		t.Fatalf("serialize err: %v", err)
	}
	var g, w any
	if err := json.Unmarshal(b, &g); err != nil {
		t.Fatalf("got is not JSON: %v\n%s", err, b)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("want is not JSON: %v", err)
	}
	if !reflect.DeepEqual(g, w) {
		t.Fatalf("document mismatch\ngot:  %s\nwant: %s", b, want)
	}
}

func TestBuild_BarChart(t *testing.T) {
	spec, err := dsl.New().
		Title("Simple bar chart").
		DataValues(vegalite.Values{{"a": "A", "b": 28.0}}).
		Mark(vegalite.Bar).
		X("a", vegalite.Nominal).
		Y("b", vegalite.Quantitative).
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"title": "Simple bar chart",
		"data": {"values": [{"a":"A","b":28}]},
		"mark": "bar",
		"encoding": {
			"x": {"field":"a","type":"nominal"},
			"y": {"field":"b","type":"quantitative"}
		}
	}`)
}

func TestBuild_LineChartWithFilter(t *testing.T) {
	spec, err := dsl.New().
		Width(500).
		DataURL("data/stocks.csv").FormatCSV().
		Filter("datum.symbol==='GOOG'").
		Mark(vegalite.Line).
		X("date", vegalite.Temporal).
		Y("price", vegalite.Quantitative).AxisTitle("price (USD)").
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"width": 500,
		"data": {"url": "data/stocks.csv", "format": {"type": "csv"}},
		"transform": [{"filter": "datum.symbol==='GOOG'"}],
		"mark": "line",
		"encoding": {
			"x": {"field":"date","type":"temporal"},
			"y": {"field":"price","type":"quantitative","axis":{"title":"price (USD)"}}
		}
	}`)
}

func TestBuild_Choropleth(t *testing.T) {
	rates := vegalite.Data{
		URL:    "data/unemployment.tsv",
		Format: &vegalite.Format{Type: vegalite.TSV},
	}
	spec, err := dsl.New().
		DataURL("data/us-10m.json").TopoJSONFeature("counties").
		Lookup("id", rates, "id", "rate").
		Projection(vegalite.AlbersUsa).
		Mark(vegalite.Geoshape).
		Color("rate", vegalite.Quantitative).Scheme("blues").
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"data": {"url": "data/us-10m.json", "format": {"type": "topojson", "feature": "counties"}},
		"transform": [{
			"lookup": "id",
			"from": {
				"data": {"url": "data/unemployment.tsv", "format": {"type": "tsv"}},
				"key": "id",
				"fields": ["rate"]
			}
		}],
		"projection": {"type": "albersUsa"},
		"mark": "geoshape",
		"encoding": {
			"color": {"field":"rate","type":"quantitative","scale":{"scheme":"blues"}}
		}
	}`)
}

func TestBuild_MarkDefAndChannelOptions(t *testing.T) {
	spec, err := dsl.New().
		DataValues(vegalite.Values{{"x": 1.0, "y": 2.0, "series": "a"}}).
		MarkDef(vegalite.Point).Tooltip(true).Filled(true).
		X("x", vegalite.Quantitative).
		Y("y", vegalite.Quantitative).Aggregate(vegalite.Mean).
		Color("series", vegalite.Nominal).
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"data": {"values": [{"x":1,"y":2,"series":"a"}]},
		"mark": {"type":"point","tooltip":true,"filled":true},
		"encoding": {
			"x": {"field":"x","type":"quantitative"},
			"y": {"field":"y","type":"quantitative","aggregate":"mean"},
			"color": {"field":"series","type":"nominal"}
		}
	}`)
}

func TestBuild_ReportsIssues(t *testing.T) {
	_, err := dsl.New().
		Mark(vegalite.MarkType("blob")).
		X("a", vegalite.FieldType("categorical")).
		Build()
	iss, ok := vegalite.AsIssues(err)
	if !ok {
		t.Fatalf("want issues, got %v", err)
	}
	codes := map[string]bool{}
	for _, it := range iss {
		codes[it.Code] = true
	}
	if !codes[vegalite.CodeRequired] || !codes[vegalite.CodeInvalidEnum] {
		t.Fatalf("want required and invalid_enum collected, got %v", iss)
	}
}

func TestMustBuild_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid spec")
		}
	}()
	dsl.New().MustBuild()
}

func TestBuild_DetachesFromBuilder(t *testing.T) {
	b := dsl.New()
	b.DataValues(vegalite.Values{{"a": "A", "b": 1.0, "series": "s"}})
	b.Mark(vegalite.Bar)
	x := b.X("a", vegalite.Nominal)
	b.Y("b", vegalite.Quantitative)

	spec, err := b.Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	before, err := spec.JSON()
	if err != nil {
		t.Fatalf("serialize err: %v", err)
	}

	// keep chaining on the same builder and its earlier steps
	b.Color("series", vegalite.Nominal)
	b.Filter("datum.b > 0")
	b.Width(999)
	x.AxisTitle("late axis title")

	after, err := spec.JSON()
	if err != nil {
		t.Fatalf("serialize err: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("built spec changed after further chaining\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestBuild_ChannelTitle(t *testing.T) {
	spec, err := dsl.New().
		DataValues(vegalite.Values{{"b": 1.0}}).
		Mark(vegalite.Bar).
		Y("b", vegalite.Quantitative).Title("amount").
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"data": {"values": [{"b":1}]},
		"mark": "bar",
		"encoding": {
			"y": {"field":"b","type":"quantitative","title":"amount"}
		}
	}`)
}

func TestBuild_ViewStroke(t *testing.T) {
	spec, err := dsl.New().
		DataValues(vegalite.Values{{"b": 1.0}}).
		Mark(vegalite.Bar).
		Y("b", vegalite.Quantitative).
		NoViewStroke().
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	jsonEqual(t, spec, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v4.json",
		"data": {"values": [{"b":1}]},
		"mark": "bar",
		"encoding": {"y": {"field":"b","type":"quantitative"}},
		"config": {"view": {"stroke": null}}
	}`)

	spec, err = dsl.New().
		DataValues(vegalite.Values{{"b": 1.0}}).
		Mark(vegalite.Bar).
		Y("b", vegalite.Quantitative).
		ViewStroke("black").
		Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if spec.Config == nil || spec.Config.View == nil ||
		spec.Config.View.Stroke == nil || *spec.Config.View.Stroke != "black" {
		t.Fatalf("view stroke not set: %+v", spec.Config)
	}
}

func TestBuild_IsRepeatable(t *testing.T) {
	b := dsl.New().
		DataValues(vegalite.Values{{"a": "A", "b": 1.0}}).
		Mark(vegalite.Bar).
		X("a", vegalite.Nominal).
		Y("b", vegalite.Quantitative)

	s1, err := b.Build()
	if err != nil {
		t.Fatalf("first build err: %v", err)
	}
	s2, err := b.Build()
	if err != nil {
		t.Fatalf("second build err: %v", err)
	}
	j1, _ := s1.JSON()
	j2, _ := s2.JSON()
	if string(j1) != string(j2) {
		t.Fatalf("builds diverge:\n%s\n%s", j1, j2)
	}
}
