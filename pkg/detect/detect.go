// Package detect classifies an input buffer as perf-script or generic
// dialect by heuristically inspecting its leading lines.
package detect

import (
	"bytes"

	"github.com/theSprog/FlameCrafter/pkg/scanner"
)

// Dialect identifies which stack-parser should consume the buffer.
type Dialect int

const (
	Generic Dialect = iota
	PerfScript
)

func (d Dialect) String() string {
	if d == PerfScript {
		return "perf-script"
	}
	return "generic"
}

// maxPreviewLines bounds how many non-blank lines the detector inspects
// before giving up and defaulting to the generic dialect.
const maxPreviewLines = 128

// Detect inspects up to the first 128 non-blank trimmed lines of buf and
// classifies the dialect. Ambiguity resolves to Generic.
func Detect(buf []byte) Dialect {
	s := scanner.NewSequential(buf)
	checked := 0
	for checked < maxPreviewLines {
		line, ok := s.Next()
		if !ok {
			break
		}
		if len(line) == 0 {
			continue
		}
		if looksLikePerfScript(line) {
			return PerfScript
		}
		checked++
	}
	return Generic
}

func looksLikePerfScript(line []byte) bool {
	if bytes.Contains(line, []byte("cycles:")) || bytes.Contains(line, []byte("instructions:")) {
		return true
	}
	return startsWithHexDigit(line) && bytes.IndexByte(line, '(') >= 0
}

func startsWithHexDigit(line []byte) bool {
	if len(line) == 0 {
		return false
	}
	c := line[0]
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
