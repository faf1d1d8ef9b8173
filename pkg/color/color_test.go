package color

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rgbPattern = regexp.MustCompile(`^rgb\(\d+,\d+,\d+\)$`)

func TestResolveDefaultsToHot(t *testing.T) {
	assert.Equal(t, "hot", Resolve("hot").Name())
	assert.Equal(t, "hot", Resolve("nonexistent-scheme").Name())
	assert.Equal(t, "hot", Resolve("").Name())
}

func TestHotColorIsDeterministic(t *testing.T) {
	a := Resolve("hot").Color("main.run", 0.5)
	b := Resolve("hot").Color("main.run", 0.5)
	assert.Equal(t, a, b)
}

func TestHotColorVariesWithNameAndHeat(t *testing.T) {
	base := Resolve("hot").Color("main.run", 0.5)
	differentName := Resolve("hot").Color("main.other", 0.5)
	differentHeat := Resolve("hot").Color("main.run", 0.9)
	assert.NotEqual(t, base, differentName)
	assert.NotEqual(t, base, differentHeat)
}

func TestHotColorFormatAndRange(t *testing.T) {
	c := Resolve("hot").Color("x", 0.0)
	require.Regexp(t, rgbPattern, c)

	var r, g, b int
	_, err := fmt.Sscanf(c, "rgb(%d,%d,%d)", &r, &g, &b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r, 205)
	assert.Less(t, r, 256)
	assert.GreaterOrEqual(t, g, 0)
	assert.Less(t, g, 230)
	assert.GreaterOrEqual(t, b, 0)
	assert.Less(t, b, 55)
}
