package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theSprog/FlameCrafter/pkg/flameerr"
	"github.com/theSprog/FlameCrafter/pkg/sample"
)

func TestGenericParserOneFramePerLine(t *testing.T) {
	samples, err := (&GenericParser{}).Parse([]byte("main\nrun\nhandle\n"), nil)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, uint64(1), samples[0].Count)
	assert.Equal(t, []string{"main", "run", "handle"}, frameNames(samples[0]))
}

func TestGenericParserBlankLineClosesSample(t *testing.T) {
	samples, err := (&GenericParser{}).Parse([]byte("a\nb\n\nc\nd\n"), nil)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, []string{"a", "b"}, frameNames(samples[0]))
	assert.Equal(t, []string{"c", "d"}, frameNames(samples[1]))
}

func TestGenericParserCommentLineClosesSample(t *testing.T) {
	samples, err := (&GenericParser{}).Parse([]byte("a\nb\n# comment\nc\n"), nil)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, []string{"a", "b"}, frameNames(samples[0]))
	assert.Equal(t, []string{"c"}, frameNames(samples[1]))
}

func TestGenericParserEmptyInputIsParseEmpty(t *testing.T) {
	_, err := (&GenericParser{}).Parse(nil, nil)
	require.Error(t, err)
	assert.True(t, flameerr.Is(err, flameerr.ParseEmpty))
}

func frameNames(s sample.Sample) []string {
	names := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		names[i] = f.Name
	}
	return names
}
