// Package color implements the flame-graph colour engine: a small
// tag-dispatched registry of schemes mapping (frame name, heat ratio) to
// an RGB string.
package color

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Scheme maps a frame name and a heat ratio in [0,1] to an RGB colour
// string.
type Scheme interface {
	Color(funcName string, heatRatio float64) string
	Name() string
}

// hotScheme mixes a hash of the frame name with the heat ratio to produce
// a warm reds/oranges/yellows palette, matching the classic "hot" scheme
// of flamegraph.pl.
type hotScheme struct{}

func (hotScheme) Name() string { return "hot" }

func (hotScheme) Color(funcName string, heatRatio float64) string {
	h := xxhash.New()
	_, _ = h.WriteString(funcName)
	var ratioBytes [8]byte
	bits := math.Float64bits(heatRatio)
	for i := 0; i < 8; i++ {
		ratioBytes[i] = byte(bits >> (8 * i))
	}
	_, _ = h.Write(ratioBytes[:])
	hash := uint32(h.Sum64())

	v1 := float64((hash>>0)&0xFF) / 255.0
	v2 := float64((hash>>8)&0xFF) / 255.0
	v3 := float64((hash>>16)&0xFF) / 255.0

	r := 205 + int(50*v3)
	g := int(230 * v1)
	b := int(55 * v2)

	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// registry resolves a scheme tag to an instance. Unknown tags fall back
// to "hot".
var registry = map[string]func() Scheme{
	"hot": func() Scheme { return hotScheme{} },
}

// Resolve returns the scheme for tag, defaulting to "hot" for any
// unrecognised tag.
func Resolve(tag string) Scheme {
	if ctor, ok := registry[tag]; ok {
		return ctor()
	}
	return hotScheme{}
}
