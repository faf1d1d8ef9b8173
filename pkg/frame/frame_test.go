package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameEqualCoversAllThreeFields(t *testing.T) {
	a := Function("main.run")
	b := Function("main.run")
	assert.True(t, a.Equal(b))

	c := Library("libc.so", false)
	assert.False(t, a.Equal(c))

	d := Library("libc.so", true)
	assert.False(t, c.Equal(d))
}

func TestFrameLessOrdersByNameThenKindThenBracket(t *testing.T) {
	assert.True(t, Function("a").Less(Function("b")))
	assert.False(t, Function("b").Less(Function("a")))

	fn := Function("x")
	lib := Library("x", false)
	assert.True(t, fn.Less(lib))

	bracketed := Library("y", true)
	unbracketed := Library("y", false)
	assert.True(t, unbracketed.Less(bracketed))
}

func TestFrameHashIsCachedAndStable(t *testing.T) {
	f := Function("foo")
	h1 := f.Hash()
	h2 := f.Hash()
	assert.Equal(t, h1, h2)

	g := Function("foo")
	assert.Equal(t, f.Hash(), g.Hash())

	other := Function("bar")
	assert.NotEqual(t, f.Hash(), other.Hash())
}

func TestDisplayNameBracketsUnbracketedLibraries(t *testing.T) {
	assert.Equal(t, "foo", Function("foo").DisplayName())
	assert.Equal(t, "[libc.so]", Library("libc.so", false).DisplayName())
	assert.Equal(t, "[kernel]", Library("[kernel]", true).DisplayName())
}

func TestFrameEmpty(t *testing.T) {
	assert.True(t, Frame{}.Empty())
	assert.False(t, Function("x").Empty())
}
