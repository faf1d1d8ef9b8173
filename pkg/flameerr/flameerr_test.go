package flameerr

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorCarriesKind(t *testing.T) {
	err := New(ParseEmpty, "no samples")
	assert.Equal(t, "parse-empty: no samples", err.Error())
	assert.True(t, Is(err, ParseEmpty))
	assert.False(t, Is(err, IO))
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	err := Wrap(IO, io.ErrUnexpectedEOF, "read input")
	assert.True(t, Is(err, IO))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(io.ErrUnexpectedEOF, IO))
}
