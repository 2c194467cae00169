package dataset_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	vegalite "github.com/ThomAub/vega-lite-go"
	"github.com/ThomAub/vega-lite-go/dataset"
)

func TestRecords(t *testing.T) {
	type row struct {
		Category string  `json:"a"`
		Amount   float64 `json:"b"`
	}
	got, err := dataset.Records([]row{{"A", 28}, {"B", 55}})
	if err != nil {
		t.Fatalf("records err: %v", err)
	}
	want := vegalite.Values{
		{"a": "A", "b": 28.0},
		{"a": "B", "b": 55.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values mismatch: got %v want %v", got, want)
	}
}

func TestRecords_NonObjectRows(t *testing.T) {
	_, err := dataset.Records([]int{1, 2, 3})
	iss, ok := vegalite.AsIssues(err)
	if !ok || iss[0].Code != vegalite.CodeParseError {
		t.Fatalf("want parse_error, got %v", err)
	}
}

func TestMatrix(t *testing.T) {
	got, err := dataset.Matrix([]string{"x", "y"}, [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("matrix err: %v", err)
	}
	want := vegalite.Values{
		{"x": 1.0, "y": 2.0},
		{"x": 3.0, "y": 4.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values mismatch: got %v want %v", got, want)
	}
}

func TestMatrix_RaggedRows(t *testing.T) {
	_, err := dataset.Matrix([]string{"x", "y"}, [][]float64{{1, 2}, {3}})
	iss, ok := vegalite.AsIssues(err)
	if !ok {
		t.Fatalf("want issues, got %v", err)
	}
	if iss[0].Path != "/1" || iss[0].Code != vegalite.CodeConflict {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestCSV(t *testing.T) {
	in := "id,rate,name\n1001,0.097,Autauga\n1003,0.091,Baldwin\n"
	got, err := dataset.CSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("csv err: %v", err)
	}
	want := vegalite.Values{
		{"id": 1001.0, "rate": 0.097, "name": "Autauga"},
		{"id": 1003.0, "rate": 0.091, "name": "Baldwin"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values mismatch: got %v want %v", got, want)
	}
}

func TestCSV_RawColumns(t *testing.T) {
	in := "zip,count\n01001,5\n"
	got, err := dataset.CSV(strings.NewReader(in), dataset.WithRawColumns("zip"))
	if err != nil {
		t.Fatalf("csv err: %v", err)
	}
	if got[0]["zip"] != "01001" {
		t.Fatalf("zip should stay a string, got %v", got[0]["zip"])
	}
	if got[0]["count"] != 5.0 {
		t.Fatalf("count should be numeric, got %v", got[0]["count"])
	}
}

func TestCSV_TabDelimited(t *testing.T) {
	in := "id\trate\n1001\t0.097\n"
	got, err := dataset.CSV(strings.NewReader(in), dataset.WithComma('\t'))
	if err != nil {
		t.Fatalf("tsv err: %v", err)
	}
	if got[0]["rate"] != 0.097 {
		t.Fatalf("rate mismatch: %v", got[0]["rate"])
	}
}

func TestCSV_Malformed(t *testing.T) {
	in := "a,b\n\"unterminated\n"
	_, err := dataset.CSV(strings.NewReader(in))
	iss, ok := vegalite.AsIssues(err)
	if !ok || iss[0].Code != vegalite.CodeParseError {
		t.Fatalf("want parse_error, got %v", err)
	}
}

func TestCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.csv")
	if err := os.WriteFile(path, []byte("id,rate\n1,0.5\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := dataset.CSVFile(path)
	if err != nil {
		t.Fatalf("csv file err: %v", err)
	}
	if len(got) != 1 || got[0]["rate"] != 0.5 {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestCSVFile_Missing(t *testing.T) {
	_, err := dataset.CSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	iss, ok := vegalite.AsIssues(err)
	if !ok || iss[0].Code != vegalite.CodeIOError {
		t.Fatalf("want io_error, got %v", err)
	}
}
