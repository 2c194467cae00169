package dataset

import (
	"github.com/goccy/go-json"

	vegalite "github.com/ThomAub/vega-lite-go"
)

// Records converts a slice of structs (or maps) into inline dataset values.
// Column names follow the elements' json tags, so the same struct can feed a
// chart and an API without duplicated field naming.
func Records[T any](rows []T) (vegalite.Values, error) {
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, vegalite.Issues{{
			Path: "/", Code: vegalite.CodeParseError,
			Message: "rows do not serialize to JSON objects", Cause: err,
		}}
	}
	var vals vegalite.Values
	if err := json.Unmarshal(b, &vals); err != nil {
		return nil, vegalite.Issues{{
			Path: "/", Code: vegalite.CodeParseError,
			Message: "rows are not objects", Cause: err,
		}}
	}
	return vals, nil
}
