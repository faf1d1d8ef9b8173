package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theSprog/FlameCrafter/pkg/detect"
)

func TestResolveDispatchesByDialect(t *testing.T) {
	assert.Equal(t, "perf-script", Resolve(detect.PerfScript).Name())
	assert.Equal(t, "generic", Resolve(detect.Generic).Name())
}

func TestResolveDefaultsToGenericForUnknownDialect(t *testing.T) {
	assert.Equal(t, "generic", Resolve(detect.Dialect(99)).Name())
}

func TestParseAutoDetectsAndParses(t *testing.T) {
	samples, dialect, err := ParseAuto([]byte("main\nrun\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, detect.Generic, dialect)
	require.Len(t, samples, 1)
}
