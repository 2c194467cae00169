// Package dsl provides the fluent builder for Vega-Lite specs.
//
// A chain starts at New, layers data, mark, encoding channels, transforms and
// a projection onto the spec, and ends at Build (validating, returning Issues)
// or MustBuild:
//
//	spec := dsl.New().
//		Title("Simple bar chart").
//		DataValues(values).
//		Mark(vegalite.Bar).
//		X("a", vegalite.Nominal).
//		Y("b", vegalite.Quantitative).
//		MustBuild()
//
// Channel constructors (X, Y, Color, ...) return a channel step; its methods
// refine the channel just added and the step forwards the builder surface so
// the chain continues without ceremony.
package dsl
