package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	vegalite "github.com/ThomAub/vega-lite-go"
	"github.com/ThomAub/vega-lite-go/display"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "render":
		renderCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "fmt":
		fmtCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "vegalite CLI\n\nUsage:\n  vegalite render -f spec.{json,yaml} [-o out.html]\n  vegalite validate -f spec.{json,yaml}\n  vegalite fmt -f spec.{json,yaml}\n\nNotes:\n  - Documents are read as YAML when the extension is .yaml/.yml, JSON otherwise.\n  - fmt prints the canonical indented JSON form to stdout.")
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var in, out string
	fs.StringVar(&in, "f", "", "spec document to render")
	fs.StringVar(&out, "o", "", "output HTML file (default stdout)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	spec := loadSpec(in)
	if err := spec.Validate(); err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := display.Write(w, spec); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "f", "", "spec document to validate")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	if err := loadSpec(in).Validate(); err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "f", "", "spec document to normalize")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	fmt.Println(loadSpec(in))
}

func loadSpec(path string) *vegalite.Spec {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}
	var spec *vegalite.Spec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err = vegalite.FromYAML(b)
	default:
		spec, err = vegalite.FromJSON(b)
	}
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	return spec
}

func reportIssues(err error) {
	var iss vegalite.Issues
	if errors.As(err, &iss) {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "- %s at %s: %s\n", it.Code, it.Path, it.Message)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
