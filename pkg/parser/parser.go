// Package parser converts line runs from the scanner into sample.Sample
// records, via one of two dialects selected by detect.Detect.
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/theSprog/FlameCrafter/pkg/detect"
	"github.com/theSprog/FlameCrafter/pkg/flameerr"
	"github.com/theSprog/FlameCrafter/pkg/sample"
)

// StackParser turns a raw sample buffer into sample.Sample records. A
// dialect needs nothing beyond parse+name; there is no deeper class
// hierarchy.
type StackParser interface {
	Parse(buf []byte, log logrus.FieldLogger) ([]sample.Sample, error)
	Name() string
}

// registry is the factory resolving a detected dialect to a parser
// instance.
var registry = map[detect.Dialect]func() StackParser{
	detect.PerfScript: func() StackParser { return &PerfScriptParser{} },
	detect.Generic:    func() StackParser { return &GenericParser{} },
}

// Resolve returns the parser for a detected dialect, defaulting to the
// generic dialect for any value not in the registry.
func Resolve(d detect.Dialect) StackParser {
	if ctor, ok := registry[d]; ok {
		return ctor()
	}
	return &GenericParser{}
}

// ParseAuto detects the dialect and parses buf with the matching parser.
func ParseAuto(buf []byte, log logrus.FieldLogger) ([]sample.Sample, detect.Dialect, error) {
	d := detect.Detect(buf)
	p := Resolve(d)
	samples, err := p.Parse(buf, log)
	if err != nil {
		return nil, d, err
	}
	return samples, d, nil
}

func errEmpty(parserName string) error {
	return flameerr.New(flameerr.ParseEmpty, "no valid samples found ("+parserName+")")
}
