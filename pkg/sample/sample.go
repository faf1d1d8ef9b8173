// Package sample defines the Sample record produced by the stack parsers.
package sample

import "github.com/theSprog/FlameCrafter/pkg/frame"

// Sample is one observation of a call stack. Frames is root-to-leaf after
// canonicalisation (the perf-script parser reverses its leaf-to-root raw
// stacks before returning; the generic parser keeps lines in the order
// written, root first). ProcessName and the frame names are copies of the
// input text, not views into the input buffer.
type Sample struct {
	Frames      []frame.Frame
	Count       uint64
	ProcessName string
	TimestampUs uint64 // 0 if absent
}

// Valid reports whether the sample has at least one frame and a positive
// count.
func (s Sample) Valid() bool {
	return len(s.Frames) > 0 && s.Count > 0
}

// TruncateDepth drops the deepest frames beyond maxDepth, counting from the
// root. maxDepth == 0 means unlimited. Applied at fold time, before the
// fold key is computed, so truncated stacks that only differed below
// maxDepth collapse into the same bucket.
func (s *Sample) TruncateDepth(maxDepth int) {
	if maxDepth > 0 && len(s.Frames) > maxDepth {
		s.Frames = s.Frames[:maxDepth]
	}
}

// Reverse flips the frame order in place. Used to implement the `reverse`
// config option: when set, each sample's root->leaf order is reversed
// before folding.
func (s *Sample) Reverse() {
	for i, j := 0, len(s.Frames)-1; i < j; i, j = i+1, j-1 {
		s.Frames[i], s.Frames[j] = s.Frames[j], s.Frames[i]
	}
}
