// Package assets embeds the d3-flamegraph bundle the HTML renderer ships
// alongside its output.
package assets

import "embed"

//go:embed d3-flamegraph.css d3.v7.min.js d3-flamegraph.js
var fs embed.FS

// Read returns the contents of one of the three bundled asset files.
func Read(name string) (string, error) {
	b, err := fs.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
