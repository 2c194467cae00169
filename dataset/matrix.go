package dataset

import (
	"fmt"

	vegalite "github.com/ThomAub/vega-lite-go"
)

// Matrix converts an in-memory numeric matrix into inline dataset values.
// cols names the columns; every row must have len(cols) entries.
func Matrix(cols []string, rows [][]float64) (vegalite.Values, error) {
	var iss vegalite.Issues
	vals := make(vegalite.Values, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(cols) {
			iss = vegalite.AppendIssues(iss, vegalite.Issue{
				Path: fmt.Sprintf("/%d", i), Code: vegalite.CodeConflict,
				Message: fmt.Sprintf("row has %d values, want %d", len(row), len(cols)),
			})
			continue
		}
		m := make(map[string]any, len(cols))
		for j, c := range cols {
			m[c] = row[j]
		}
		vals = append(vals, m)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return vals, nil
}
