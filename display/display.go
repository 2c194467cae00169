// Package display hands serialized specs to the external rendering engine.
//
// Rendering is not implemented here: HTML wraps the spec in a page that loads
// vega, vega-lite and vega-embed from a CDN, and Show opens that page in the
// platform browser. Write targets an io.Writer for piping and tests.
package display

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"os/exec"
	"runtime"

	vegalite "github.com/ThomAub/vega-lite-go"
)

// Pinned renderer versions. The spec documents are pinned to the v4 schema, so
// the vega-lite major here must stay at 4.
const (
	vegaVersion     = "5"
	vegaLiteVersion = "4"
	embedVersion    = "6"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@{{.Vega}}"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@{{.VegaLite}}"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@{{.Embed}}"></script>
</head>
<body>
  <div id="vis"></div>
  <script>
    vegaEmbed("#vis", {{.Spec}}).catch(console.error);
  </script>
</body>
</html>
`))

type pageData struct {
	Title    string
	Vega     string
	VegaLite string
	Embed    string
	Spec     template.JS
}

// HTML renders a standalone page embedding the serialized spec.
func HTML(spec *vegalite.Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the page into w.
func Write(w io.Writer, spec *vegalite.Spec) error {
	b, err := spec.JSON()
	if err != nil {
		return err
	}
	title := spec.Title
	if title == "" {
		title = "vega-lite chart"
	}
	return pageTmpl.Execute(w, pageData{
		Title:    title,
		Vega:     vegaVersion,
		VegaLite: vegaLiteVersion,
		Embed:    embedVersion,
		Spec:     template.JS(b),
	})
}

// Show writes the page to a temp file and opens it in the platform browser.
// Best-effort by nature: an unavailable opener is reported, a browser that
// ignores the request is not. The context bounds the opener process.
func Show(ctx context.Context, spec *vegalite.Spec) error {
	f, err := os.CreateTemp("", "vegalite-*.html")
	if err != nil {
		return vegalite.Issues{{Path: "/", Code: vegalite.CodeIOError, Message: "cannot create temp page", Cause: err}}
	}
	if err := Write(f, spec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return vegalite.Issues{{Path: "/", Code: vegalite.CodeIOError, Message: "cannot finish temp page", Cause: err}}
	}
	return open(ctx, f.Name())
}

func open(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("display: cannot open %s: %w", path, err)
	}
	// Release the process; the browser outlives us.
	return cmd.Process.Release()
}
