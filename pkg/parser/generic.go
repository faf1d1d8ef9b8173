package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/theSprog/FlameCrafter/pkg/frame"
	"github.com/theSprog/FlameCrafter/pkg/sample"
	"github.com/theSprog/FlameCrafter/pkg/scanner"
)

// GenericParser parses one function frame per non-blank, non-"#"-prefixed
// line, in root-to-leaf order as written. A blank line, a "#"-prefixed
// comment line, or EOF closes the current sample; each closed sample
// carries an implicit count of 1 and no process name.
type GenericParser struct{}

func (p *GenericParser) Name() string { return "generic" }

func (p *GenericParser) Parse(buf []byte, log logrus.FieldLogger) ([]sample.Sample, error) {
	s := scanner.NewSequential(buf)

	var samples []sample.Sample
	var cur []frame.Frame

	closeSample := func() {
		if len(cur) > 0 {
			samples = append(samples, sample.Sample{Frames: cur, Count: 1})
		}
		cur = nil
	}

	for {
		line, ok := s.Next()
		if !ok {
			break
		}
		if len(line) == 0 || line[0] == '#' {
			closeSample()
			continue
		}
		cur = append(cur, frame.Function(string(line)))
	}
	closeSample()

	if len(samples) == 0 {
		return nil, errEmpty(p.Name())
	}
	return samples, nil
}
