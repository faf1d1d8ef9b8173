package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/theSprog/FlameCrafter/pkg/render/assets"
	"github.com/theSprog/FlameCrafter/pkg/tree"
)

// HTML is the self-contained HTML renderer. It JSON-serialises the tree
// for a third-party d3-flamegraph visualiser and embeds that visualiser's
// static assets from known relative paths.
type HTML struct {
	// AssetDir, if non-empty, overrides the embedded d3 bundle with files
	// read from this directory (d3.v7.min.js, d3-flamegraph.js/css).
	AssetDir string
}

// NewHTML returns an HTML renderer. An empty assetDir uses the embedded
// bundle in pkg/render/assets.
func NewHTML(assetDir string) *HTML {
	return &HTML{AssetDir: assetDir}
}

func (r *HTML) readAsset(name string) (string, error) {
	if r.AssetDir == "" {
		return assets.Read(name)
	}
	b, err := os.ReadFile(filepath.Join(r.AssetDir, name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var htmlTmpl = template.Must(template.New("html-shell").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Flamegraph Viewer</title>
  <style>
{{.CSS}}
  </style>
</head>
<body>
  <h1>Flamegraph</h1>
  <div id="chart"></div>
  <script>
{{.D3JS}}
  </script>
  <script>
{{.FlameGraphJS}}
  </script>
  <script>
    const rawData = {{.TreeJSON}};

    const flameGraph = flamegraph()
      .width(1200)
      .cellHeight(18)
      .transitionDuration(750)
      .minFrameSize(5)
      .selfValue(true)
      .tooltip(true)
      .title("");

    d3.select("#chart")
      .datum(rawData)
      .call(flameGraph);
  </script>
</body>
</html>
`))

// Render streams the HTML document for root to w, loading its three
// static asset blobs from the embedded bundle or AssetDir.
func (r *HTML) Render(root *tree.Node, w io.Writer) error {
	css, err := r.readAsset("d3-flamegraph.css")
	if err != nil {
		return errors.Wrap(err, "read d3-flamegraph.css")
	}
	d3js, err := r.readAsset("d3.v7.min.js")
	if err != nil {
		return errors.Wrap(err, "read d3.v7.min.js")
	}
	fgjs, err := r.readAsset("d3-flamegraph.js")
	if err != nil {
		return errors.Wrap(err, "read d3-flamegraph.js")
	}

	var json strings.Builder
	writeTreeJSON(&json, root)

	data := struct {
		CSS, D3JS, FlameGraphJS, TreeJSON string
	}{css, d3js, fgjs, json.String()}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "render html shell")
	}
	return nil
}

// writeTreeJSON recursively serialises n as {"name","value","children"},
// where value is the inclusive (total) count.
func writeTreeJSON(b *strings.Builder, n *tree.Node) {
	b.WriteByte('{')
	b.WriteString(`"name":"`)
	b.WriteString(jsonEscape(displayName(n, n.Frame == nil)))
	b.WriteString(`","value":`)
	fmt.Fprintf(b, "%d", n.Total)

	children := n.ChildSlice()
	if len(children) > 0 {
		b.WriteString(`,"children":[`)
		for i, c := range children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeTreeJSON(b, c)
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
}

func jsonEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
