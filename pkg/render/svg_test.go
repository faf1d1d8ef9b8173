package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theSprog/FlameCrafter/pkg/config"
	"github.com/theSprog/FlameCrafter/pkg/fold"
	"github.com/theSprog/FlameCrafter/pkg/frame"
	"github.com/theSprog/FlameCrafter/pkg/tree"
)

func buildTestTree(t *testing.T) *tree.Node {
	t.Helper()
	m := fold.New()
	m.Add([]frame.Frame{frame.Function("main"), frame.Function("run")}, 7)
	m.Add([]frame.Frame{frame.Function("main"), frame.Function("idle")}, 3)
	return tree.Build(m)
}

func TestRenderEmptyTreeIsRenderError(t *testing.T) {
	root := tree.Build(fold.New())
	var buf strings.Builder
	err := NewSVG(config.Default()).Render(root, &buf)
	require.Error(t, err)
}

func TestRenderFlameProducesValidSVGShell(t *testing.T) {
	root := buildTestTree(t)
	defer tree.Destroy(root)

	var buf strings.Builder
	cfg := config.Default()
	require.NoError(t, NewSVG(cfg).Render(root, &buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "xmlns:fg=\"http://github.com/theSprog/FlameCrafter\"")
	assert.Contains(t, out, "id=\"frames\"")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "run")
}

func TestRenderHeightMatchesGeometryFormula(t *testing.T) {
	root := buildTestTree(t)
	defer tree.Destroy(root)

	cfg := config.Default()
	var buf strings.Builder
	require.NoError(t, NewSVG(cfg).Render(root, &buf))

	padTop := 3 * cfg.FontSize
	padBottom := 2*cfg.FontSize + 10
	wantHeight := (root.Height+1)*cfg.FrameHeight + padTop + padBottom
	assert.Contains(t, buf.String(), "height=\""+itoa(wantHeight)+"\"")
}

func TestRenderSubtitleAddsExtraPadding(t *testing.T) {
	root := buildTestTree(t)
	defer tree.Destroy(root)

	cfg := config.Default()
	cfg.Subtitle = "rev 1"
	var buf strings.Builder
	require.NoError(t, NewSVG(cfg).Render(root, &buf))

	padTop := 3 * cfg.FontSize
	padBottom := 2*cfg.FontSize + 10
	padSubtitle := 2 * cfg.FontSize
	wantHeight := (root.Height+1)*cfg.FrameHeight + padTop + padBottom + padSubtitle
	assert.Contains(t, buf.String(), "height=\""+itoa(wantHeight)+"\"")
	assert.Contains(t, buf.String(), "id=\"subtitle\"")
}

func TestRenderEscapesTitle(t *testing.T) {
	root := buildTestTree(t)
	defer tree.Destroy(root)

	cfg := config.Default()
	cfg.Title = `<a & "b">`
	var buf strings.Builder
	require.NoError(t, NewSVG(cfg).Render(root, &buf))
	assert.Contains(t, buf.String(), "&lt;a &amp; &quot;b&quot;&gt;")
	assert.NotContains(t, buf.String(), `<a & "b">`)
}

func TestRenderMinWidthOmitsNarrowChildrenButKeepsLayoutSpacing(t *testing.T) {
	m := fold.New()
	m.Add([]frame.Frame{frame.Function("main"), frame.Function("tiny")}, 1)
	m.Add([]frame.Frame{frame.Function("main"), frame.Function("zbig")}, 999)
	root := tree.Build(m)
	defer tree.Destroy(root)

	cfg := config.Default()
	cfg.MinWidth = 5 // pixels; "tiny" subtree gets ~1 sample worth, far under 5px
	var buf strings.Builder
	require.NoError(t, NewSVG(cfg).Render(root, &buf))
	assert.Contains(t, buf.String(), "zbig")
	assert.NotContains(t, buf.String(), "tiny")
	// "tiny" sorts before "zbig"; its 1.18px slot is still consumed, so
	// "zbig" starts at xpad + 1.18 = 11.2.
	assert.Contains(t, buf.String(), `<rect x="11.2" `)
}

func TestRenderRootAndSeparatorFramesGetNeutralColor(t *testing.T) {
	m := fold.New()
	m.Add([]frame.Frame{frame.Function("--")}, 5)
	root := tree.Build(m)
	defer tree.Destroy(root)

	cfg := config.Default()
	var buf strings.Builder
	require.NoError(t, NewSVG(cfg).Render(root, &buf))
	assert.Contains(t, buf.String(), "rgb(250,250,250)") // root
	assert.Contains(t, buf.String(), "rgb(240,240,240)") // "--" separator
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
