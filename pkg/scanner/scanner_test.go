package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialTrimsAndSplitsOnNewline(t *testing.T) {
	s := NewSequential([]byte("  foo  \nbar\n\nbaz"))
	var lines []string
	for {
		line, ok := s.Next()
		if !ok {
			break
		}
		lines = append(lines, string(line))
	}
	assert.Equal(t, []string{"foo", "bar", "", "baz"}, lines)
}

func TestSequentialEmptyBuffer(t *testing.T) {
	s := NewSequential(nil)
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestSequentialNoTrailingNewline(t *testing.T) {
	s := NewSequential([]byte("only"))
	line, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "only", string(line))
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestIndexedLineCountAndAccess(t *testing.T) {
	idx := NewIndexed([]byte("a\nb\nc\n"))
	require.Equal(t, 3, idx.Len())
	assert.Equal(t, "a", string(idx.Line(0)))
	assert.Equal(t, "b", string(idx.Line(1)))
	assert.Equal(t, "c", string(idx.Line(2)))
}

func TestIndexedNoTrailingNewline(t *testing.T) {
	idx := NewIndexed([]byte("a\nb"))
	require.Equal(t, 2, idx.Len())
	assert.Equal(t, "b", string(idx.Line(1)))
}

func TestIndexedEmptyBuffer(t *testing.T) {
	idx := NewIndexed(nil)
	assert.Equal(t, 0, idx.Len())
}

func TestBoundedIndexedWalksSubrange(t *testing.T) {
	idx := NewIndexed([]byte("a\nb\nc\nd\n"))
	b := idx.Bounded(1, 3)
	var got []string
	for {
		line, ok := b.Next()
		if !ok {
			break
		}
		got = append(got, string(line))
	}
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestBoundedIndexedEmptyRange(t *testing.T) {
	idx := NewIndexed([]byte("a\nb\n"))
	b := idx.Bounded(1, 1)
	_, ok := b.Next()
	assert.False(t, ok)
}

func TestBlockRangeCoversWholeInputContiguously(t *testing.T) {
	idx := NewIndexed([]byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"))
	const numBlocks = 3
	prevEnd := 0
	for b := 0; b < numBlocks; b++ {
		start, end := idx.BlockRange(b, numBlocks)
		assert.Equal(t, prevEnd, start)
		prevEnd = end
	}
	assert.Equal(t, idx.Len(), prevEnd)
}
