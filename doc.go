package vegalite

// Package vegalite provides:
//
// - A typed model of the Vega-Lite v4 specification grammar (Spec, Data, MarkDef, Encoding, Transform, Projection)
// - Serialization to and from the grammar's JSON text form, plus YAML-authored documents
// - A stable error model via Issues (JSON Pointer, code, message)
// - Validation of the invariants the grammar expects before a spec is handed to a renderer
//
// Design policy:
// - Keep the schema-mirrored value objects and the public API in the root package.
// - Place the fluent builder under dsl/, tabular data helpers under dataset/,
//   the display helper under display/, and the CLI under cmd/vegalite.
// - Rendering is external: specs are serialized and handed to vega-embed.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	spec := dsl.New().
//		Title("Stock prices").
//		DataURL("https://vega.github.io/vega-datasets/data/stocks.csv").
//		Mark(vegalite.Line).
//		X("date", vegalite.Temporal).
//		Y("price", vegalite.Quantitative).
//		MustBuild()
//
//	fmt.Fprintln(os.Stderr, spec)
//	err := display.Show(ctx, spec)
