// Package render implements the SVG layout/writer and the minimal
// self-contained HTML renderer.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/theSprog/FlameCrafter/pkg/color"
	"github.com/theSprog/FlameCrafter/pkg/config"
	"github.com/theSprog/FlameCrafter/pkg/flameerr"
	"github.com/theSprog/FlameCrafter/pkg/tree"
)

// shellData feeds the static SVG shell template: prologue, defs, style,
// script and controls. Frames holds the already-rendered node markup.
type shellData struct {
	Width, Height          int
	Title, Subtitle, Notes string
	BGColor1, BGColor2     string
	FontType               string
	FontSize               int
	TitleSize              int
	FontWidth              string
	XPad                   int
	Inverted               bool
	SearchColor, NameType  string
	TitleX, TitleY         int
	SubtitleY, DetailsY    int
	SearchX, IgnoreX       int
	Script                 string
	Frames                 string
}

var shellTmpl = template.Must(template.New("svg-shell").Parse(`<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" width="{{.Width}}" height="{{.Height}}" onload="init(evt)" viewBox="0 0 {{.Width}} {{.Height}}" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" xmlns:fg="http://github.com/theSprog/FlameCrafter">
<!-- Flame graph stack visualization. -->
<!-- NOTES: {{.Notes}} -->
<defs>
  <linearGradient id="background" y1="0" y2="1" x1="0" x2="0">
    <stop stop-color="{{.BGColor1}}" offset="5%" />
    <stop stop-color="{{.BGColor2}}" offset="95%" />
  </linearGradient>
</defs>
<style type="text/css">
  text { font-family:{{.FontType}}; font-size:{{.FontSize}}px; fill:black; }
  #search, #ignorecase { opacity:0.1; cursor:pointer; }
  #search:hover, #search.show, #ignorecase:hover, #ignorecase.show { opacity:1; }
  #subtitle { text-anchor:middle; font-color:rgb(160,160,160); }
  #title { text-anchor:middle; font-size:{{.TitleSize}}px}
  #unzoom { cursor:pointer; }
  #frames > *:hover { stroke:black; stroke-width:0.5; cursor:pointer; }
  .hide { display:none; }
  .parent { opacity:0.5; }
</style>
{{if .Script}}<script type="text/ecmascript">
<![CDATA[
"use strict";
var details, searchbtn, unzoombtn, matchedtxt, svg, searching, currentSearchTerm, ignorecase, ignorecaseBtn;
var fontsize = {{.FontSize}};
var fontwidth = {{.FontWidth}};
var xpad = {{.XPad}};
var inverted = {{.Inverted}};
var searchcolor = '{{.SearchColor}}';
var nametype = '{{.NameType}}';

{{.Script}}
]]>
</script>{{end}}
<rect x="0.0" y="0" width="{{.Width}}" height="{{.Height}}" fill="url(#background)" />
<text id="title" x="{{.TitleX}}" y="{{.TitleY}}">{{.Title}}</text>
{{if .Subtitle}}<text id="subtitle" x="{{.TitleX}}" y="{{.SubtitleY}}">{{.Subtitle}}</text>{{end}}
<text id="details" x="{{.XPad}}" y="{{.DetailsY}}"> </text>
<text id="unzoom" x="{{.XPad}}" y="{{.TitleY}}" class="hide">Reset Zoom</text>
<text id="search" x="{{.SearchX}}" y="{{.TitleY}}">Search</text>
<text id="ignorecase" x="{{.IgnoreX}}" y="{{.TitleY}}">ic</text>
<text id="matched" x="{{.SearchX}}" y="{{.DetailsY}}"> </text>
<g id="frames">
{{.Frames}}</g>
</svg>
`))

// SVG renders a flame tree to an SVG 1.1 document.
type SVG struct {
	cfg    config.Config
	scheme color.Scheme
}

// NewSVG returns an SVG renderer bound to cfg, resolving its colour scheme
// up front (unknown tags fall back to "hot").
func NewSVG(cfg config.Config) *SVG {
	return &SVG{cfg: cfg, scheme: color.Resolve(cfg.Colors)}
}

// Render streams the SVG document for root to w.
func (s *SVG) Render(root *tree.Node, w io.Writer) error {
	if root.Total == 0 {
		return flameerr.New(flameerr.Render, "root node has no samples to render")
	}

	maxDepth := root.Height
	padTop := 3 * s.cfg.FontSize
	padBottom := 2*s.cfg.FontSize + 10
	padSubtitle := 0
	if s.cfg.Subtitle != "" {
		padSubtitle = 2 * s.cfg.FontSize
	}
	height := (maxDepth+1)*s.cfg.FrameHeight + padTop + padBottom + padSubtitle

	pixelsPerSample := float64(s.cfg.Width-2*s.cfg.XPad) / float64(root.Total)

	rc := renderCtx{
		cfg:             s.cfg,
		scheme:          s.scheme,
		totalSamples:    root.Total,
		maxDepth:        maxDepth,
		pixelsPerSample: pixelsPerSample,
	}

	var frames bytes.Buffer
	if s.cfg.Inverted {
		y := float64(padTop + padSubtitle)
		rc.emitNode(&frames, root, float64(s.cfg.XPad), y, float64(s.cfg.Width-2*s.cfg.XPad), 0, true)
		rc.emitChildrenIcicle(&frames, root, float64(s.cfg.XPad), y, 1)
	} else {
		y := float64(height-padBottom) - float64(s.cfg.FrameHeight)
		rc.emitNode(&frames, root, float64(s.cfg.XPad), y, float64(s.cfg.Width-2*s.cfg.XPad), 0, true)
		rc.emitChildrenFlame(&frames, root, float64(s.cfg.XPad), y, 1)
	}

	script := ""
	if s.cfg.Interactive {
		script = interactiveScript
	}

	data := shellData{
		Width: s.cfg.Width, Height: height,
		Title:    escapeXML(s.cfg.Title),
		Subtitle: escapeXML(s.cfg.Subtitle),
		Notes:    escapeXML(s.cfg.Notes),
		BGColor1: s.cfg.BGColor1, BGColor2: s.cfg.BGColor2,
		FontType: s.cfg.FontType, FontSize: s.cfg.FontSize,
		TitleSize: s.cfg.FontSize + 5,
		FontWidth: fmt.Sprintf("%.2f", s.cfg.FontWidth),
		XPad:      s.cfg.XPad, Inverted: s.cfg.Inverted,
		SearchColor: s.cfg.SearchColor, NameType: s.cfg.NameType,
		TitleX: s.cfg.Width / 2, TitleY: s.cfg.FontSize * 2,
		SubtitleY: s.cfg.FontSize * 4, DetailsY: height - padBottom/2,
		SearchX: s.cfg.Width - s.cfg.XPad - 100, IgnoreX: s.cfg.Width - s.cfg.XPad - 16,
		Script: script,
		Frames: frames.String(),
	}

	if err := shellTmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "render svg shell")
	}
	return nil
}

// renderCtx carries the per-render constants every recursive emit call
// needs, avoiding a struct-method-per-node closure allocation.
type renderCtx struct {
	cfg             config.Config
	scheme          color.Scheme
	totalSamples    uint64
	maxDepth        int
	pixelsPerSample float64
}

func (rc *renderCtx) emitChildrenFlame(buf *bytes.Buffer, n *tree.Node, x, parentY float64, depth int) {
	childX := x
	childY := parentY - float64(rc.cfg.FrameHeight)
	for _, c := range n.ChildSlice() {
		childWidth := float64(c.Total) * rc.pixelsPerSample
		if childWidth >= rc.cfg.MinWidth {
			rc.emitNode(buf, c, childX, childY, childWidth, depth, false)
			if len(c.Children) > 0 {
				rc.emitChildrenFlame(buf, c, childX, childY, depth+1)
			}
		}
		childX += childWidth
	}
}

func (rc *renderCtx) emitChildrenIcicle(buf *bytes.Buffer, n *tree.Node, x, parentY float64, depth int) {
	childX := x
	childY := parentY + float64(rc.cfg.FrameHeight)
	for _, c := range n.ChildSlice() {
		childWidth := float64(c.Total) * rc.pixelsPerSample
		if childWidth >= rc.cfg.MinWidth {
			rc.emitNode(buf, c, childX, childY, childWidth, depth, false)
			if len(c.Children) > 0 {
				rc.emitChildrenIcicle(buf, c, childX, childY, depth+1)
			}
		}
		childX += childWidth
	}
}

func (rc *renderCtx) emitNode(buf *bytes.Buffer, n *tree.Node, x, y, width float64, depth int, isRoot bool) {
	title := buildTitle(displayName(n, isRoot), n.Total, rc.totalSamples, rc.cfg.CountName)
	col := rc.frameColor(n, depth, isRoot)

	buf.WriteString("<g>\n<title>")
	buf.WriteString(escapeXML(title))
	buf.WriteString("</title>\n<rect x=\"")
	fmt.Fprintf(buf, "%.1f", x)
	buf.WriteString("\" y=\"")
	fmt.Fprintf(buf, "%d", int(y))
	buf.WriteString("\" width=\"")
	fmt.Fprintf(buf, "%.1f", width)
	buf.WriteString("\" height=\"")
	fmt.Fprintf(buf, "%d", rc.cfg.FrameHeight-1)
	buf.WriteString("\" fill=\"")
	buf.WriteString(col)
	buf.WriteString("\" rx=\"2\" ry=\"2\" />\n<text x=\"")
	fmt.Fprintf(buf, "%.2f", x+3)
	buf.WriteString("\" y=\"")
	fmt.Fprintf(buf, "%.1f", y+float64(rc.cfg.FrameHeight)-5)
	buf.WriteString("\"></text>\n</g>\n")
}

func displayName(n *tree.Node, isRoot bool) string {
	if isRoot || n.Frame == nil {
		return "root"
	}
	return n.Frame.DisplayName()
}

func (rc *renderCtx) frameColor(n *tree.Node, depth int, isRoot bool) string {
	if isRoot {
		return "rgb(250,250,250)"
	}
	name := n.Frame.Name
	if name == "--" || name == "-" {
		return "rgb(240,240,240)"
	}
	heatRatio := 0.0
	if rc.maxDepth > 0 {
		heatRatio = float64(depth) / float64(rc.maxDepth)
	}
	return rc.scheme.Color(name, heatRatio)
}

func buildTitle(name string, samples, totalSamples uint64, countName string) string {
	unit := countName
	if unit == "" {
		unit = "samples"
	}
	if totalSamples == 0 {
		return fmt.Sprintf("%s (%d %s)", name, samples, unit)
	}
	pct := float64(samples) / float64(totalSamples) * 100
	return fmt.Sprintf("%s (%d %s, %.2f%%)", name, samples, unit, pct)
}

// escapeXML escapes the five reserved XML characters.
func escapeXML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
