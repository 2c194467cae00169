// Package dataset bridges Go tabular data into inline dataset values.
//
// Three entry points cover the usual sources: Records for struct slices,
// Matrix for numeric column data already in memory, and CSV/CSVFile for local
// delimited files. All return vegalite.Values ready for dsl.DataValues.
package dataset
