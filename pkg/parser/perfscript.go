package parser

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/theSprog/FlameCrafter/pkg/frame"
	"github.com/theSprog/FlameCrafter/pkg/sample"
	"github.com/theSprog/FlameCrafter/pkg/scanner"
)

// PerfScriptParser parses Linux "perf script" output: a header line
// "<comm> <pid> <ts>: <event>:" followed by indented
// "<addr> <sym>+<off> (<dso>)" frame lines, terminated by a blank line.
type PerfScriptParser struct{}

func (p *PerfScriptParser) Name() string { return "perf-script" }

func (p *PerfScriptParser) Parse(buf []byte, log logrus.FieldLogger) ([]sample.Sample, error) {
	samples, dropped := parsePerfScriptFrom(scanner.NewSequential(buf), true)

	if log != nil && dropped > 0 {
		log.WithField("dropped_frames", dropped).Debug("perf-script parser dropped malformed frame lines")
	}

	if len(samples) == 0 {
		return nil, errEmpty(p.Name())
	}
	return samples, nil
}

// lineReader is the shared contract between the sequential scanner and the
// bounded per-block reader used by the parallel orchestrator.
type lineReader interface {
	Next() ([]byte, bool)
}

// parsePerfScriptFrom runs the header/frame state machine over any
// lineReader. flushTrailing controls whether an in-progress sample at
// end-of-input is kept: the sequential parser always flushes (true EOF),
// while a non-final parallel block must discard its trailing partial
// sample and let the next block's boundary-seek re-parse it from the
// header.
func parsePerfScriptFrom(lr lineReader, flushTrailing bool) ([]sample.Sample, int) {
	var samples []sample.Sample
	var cur sample.Sample
	readingStack := false
	dropped := 0

	flush := func() {
		if readingStack && len(cur.Frames) > 0 {
			reversed := make([]frame.Frame, len(cur.Frames))
			for i, f := range cur.Frames {
				reversed[len(cur.Frames)-1-i] = f
			}
			cur.Frames = reversed
			cur.Count = 1
			if cur.Valid() {
				samples = append(samples, cur)
			}
		}
		cur = sample.Sample{}
		readingStack = false
	}

	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		if len(line) == 0 {
			flush()
			continue
		}
		if !readingStack && bytesIndexByte(line, ':') >= 0 {
			cur.ProcessName = extractProcessName(line)
			cur.TimestampUs = extractTimestampUs(line)
			readingStack = true
			continue
		}
		if readingStack {
			f, ok := parsePerfFrame(line)
			if !ok {
				dropped++
				continue
			}
			cur.Frames = append(cur.Frames, f)
		}
	}
	if flushTrailing {
		flush()
	}

	return samples, dropped
}

// IsHeaderOrBlank reports whether line is a safe sample boundary: blank, or
// a header line (contains ':'). Exported for the parallel orchestrator's
// boundary-seek rule.
func IsHeaderOrBlank(line []byte) bool {
	return len(line) == 0 || bytesIndexByte(line, ':') >= 0
}

// ParsePerfScriptBlock parses lines [start, end) of idx as a perf-script
// block. flushTrailing should be true only for the last block in the
// partition.
func ParsePerfScriptBlock(idx *scanner.Indexed, start, end int, flushTrailing bool) []sample.Sample {
	samples, _ := parsePerfScriptFrom(idx.Bounded(start, end), flushTrailing)
	return samples
}

func bytesIndexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// extractProcessName returns the whitespace-delimited prefix of the header
// line.
func extractProcessName(line []byte) string {
	i := 0
	for i < len(line) && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	return string(line[:i])
}

// extractTimestampUs returns the numeric token immediately before the
// first ':' on the line, converted from fractional seconds to
// microseconds. Missing or malformed -> 0.
func extractTimestampUs(line []byte) uint64 {
	colon := bytesIndexByte(line, ':')
	if colon < 0 {
		return 0
	}
	start := colon - 1
	for start >= 0 && line[start] == ' ' {
		start--
	}
	end := start + 1
	for start >= 0 && line[start] != ' ' && line[start] != '\t' {
		start--
	}
	start++
	if start >= end {
		return 0
	}
	ts, err := strconv.ParseFloat(string(line[start:end]), 64)
	if err != nil {
		return 0
	}
	return uint64(ts * 1_000_000)
}

// parsePerfFrame parses one stack-frame line of the form
// "<hex-addr> name[+offset] [(lib)]" into a frame.Frame. Returns false for
// an unparsable or empty frame, which the caller silently drops.
func parsePerfFrame(line []byte) (frame.Frame, bool) {
	s := string(line)
	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return frame.Frame{}, false
	}
	content := strings.TrimLeft(s[sp+1:], " \t")
	if content == "" {
		return frame.Frame{}, false
	}

	var funcName, libName string
	var alreadyBracketed bool

	if pOpen := strings.LastIndexByte(content, '('); pOpen >= 0 {
		pClose := strings.IndexByte(content[pOpen:], ')')
		if pClose >= 0 {
			libName = content[pOpen+1 : pOpen+pClose]
			funcName = strings.TrimRight(content[:pOpen], " \t")
		} else {
			funcName = content
		}
	} else {
		funcName = content
	}

	if funcName != "[unknown]" {
		if plus := strings.LastIndexByte(funcName, '+'); plus >= 0 && looksLikeOffset(funcName[plus:]) {
			funcName = funcName[:plus]
		}
	}

	if libName != "" {
		if slash := strings.LastIndexByte(libName, '/'); slash >= 0 {
			libName = libName[slash+1:]
		}
		if len(libName) >= 2 && libName[0] == '[' && libName[len(libName)-1] == ']' {
			alreadyBracketed = true
		}
	}

	if funcName != "" && funcName != "[unknown]" {
		return frame.Function(funcName), true
	}
	if libName == "" {
		return frame.Frame{}, false
	}
	return frame.Library(libName, alreadyBracketed), true
}

// looksLikeOffset reports whether s (starting with '+') matches "+0xNNN".
func looksLikeOffset(s string) bool {
	if len(s) < 4 || s[0] != '+' {
		return false
	}
	rest := s[1:]
	if !strings.HasPrefix(rest, "0x") && !strings.HasPrefix(rest, "0X") {
		return false
	}
	hex := rest[2:]
	if hex == "" {
		return false
	}
	for _, c := range hex {
		if !isHexDigit(byte(c)) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
