package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	vegalite "github.com/ThomAub/vega-lite-go"
)

// CSVOption tunes CSV reading.
type CSVOption func(*csvConfig)

type csvConfig struct {
	comma   rune
	rawCols map[string]struct{}
}

// WithComma sets the field delimiter (for TSV files pass '\t').
func WithComma(c rune) CSVOption {
	return func(cfg *csvConfig) { cfg.comma = c }
}

// WithRawColumns disables numeric sniffing for the named columns so values
// like zip codes keep their leading zeros.
func WithRawColumns(cols ...string) CSVOption {
	return func(cfg *csvConfig) {
		for _, c := range cols {
			cfg.rawCols[c] = struct{}{}
		}
	}
}

// CSVFile reads a local delimited file with a header row into inline dataset
// values.
func CSVFile(path string, opts ...CSVOption) (vegalite.Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, vegalite.Issues{{
			Path: "/", Code: vegalite.CodeIOError,
			Message: "cannot open data file", Hint: path, Cause: err,
		}}
	}
	defer f.Close()
	return CSV(f, opts...)
}

// CSV reads delimited text with a header row into inline dataset values.
// Fields that parse as numbers become JSON numbers unless excluded via
// WithRawColumns; everything else stays a string.
func CSV(r io.Reader, opts ...CSVOption) (vegalite.Values, error) {
	cfg := csvConfig{comma: ',', rawCols: map[string]struct{}{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, vegalite.Issues{{
			Path: "/", Code: vegalite.CodeParseError,
			Message: "cannot read header row", Cause: err,
		}}
	}
	cols := append([]string(nil), header...)

	var vals vegalite.Values
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, vegalite.Issues{{
				Path: "/", Code: vegalite.CodeParseError,
				Message: "malformed record", Hint: strconv.Itoa(line), Cause: err,
			}}
		}
		m := make(map[string]any, len(cols))
		for j, c := range cols {
			if j >= len(rec) {
				break
			}
			m[c] = sniff(rec[j], c, cfg.rawCols)
		}
		vals = append(vals, m)
	}
	return vals, nil
}

func sniff(s, col string, raw map[string]struct{}) any {
	if _, keep := raw[col]; keep || s == "" {
		return s
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}
