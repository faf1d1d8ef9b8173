// Package fold aggregates samples by whole-stack equality into a multiset
// keyed by the entire frame sequence.
package fold

import (
	"bytes"

	"github.com/theSprog/FlameCrafter/pkg/frame"
	"github.com/theSprog/FlameCrafter/pkg/sample"
)

// entry pairs a multiset key with its accumulated count. Multiset stores
// entries rather than a map keyed directly by frame.FramesKey because the
// key type carries a mutable hash memo; a slice of entries with manual
// lookup avoids requiring FramesKey to be map-key-comparable.
type entry struct {
	key   frame.FramesKey
	count uint64
}

// Multiset maps a frame sequence to its occurrence count. The invariant is
// that every key is non-empty and every value is positive; Fold and Filter
// both preserve it.
type Multiset struct {
	buckets map[uint64][]int // hash -> indices into entries
	entries []entry
}

// New returns an empty multiset.
func New() *Multiset {
	return &Multiset{buckets: make(map[uint64][]int)}
}

// Len reports the number of distinct keys.
func (m *Multiset) Len() int { return len(m.entries) }

// ForEach visits every (key, count) pair, in insertion order. Used by the
// tree builder.
func (m *Multiset) ForEach(fn func(key frame.FramesKey, count uint64)) {
	for _, e := range m.entries {
		fn(e.key, e.count)
	}
}

// Add inserts frames with the given count, adding to any existing entry
// with an identical frame sequence.
func (m *Multiset) Add(frames []frame.Frame, count uint64) {
	if len(frames) == 0 || count == 0 {
		return
	}
	key := frame.NewFramesKey(frames)
	h := key.Hash()
	for _, idx := range m.buckets[h] {
		if m.entries[idx].key.Equal(key) {
			m.entries[idx].count += count
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], len(m.entries))
	m.entries = append(m.entries, entry{key: key, count: count})
}

// Fold iterates samples, inserting each into the multiset, applying
// max_depth truncation and the reverse flag before insertion.
func Fold(samples []sample.Sample, maxDepth int, reverse bool) *Multiset {
	m := New()
	for i := range samples {
		s := samples[i]
		s.TruncateDepth(maxDepth)
		if reverse {
			s.Reverse()
		}
		if !s.Valid() {
			continue
		}
		m.Add(s.Frames, s.Count)
	}
	return m
}

// Filter removes keys whose total count falls below threshold, returning a
// new multiset. threshold <= 1 is a no-op (every key already carries at
// least count 1).
func (m *Multiset) Filter(threshold uint64) *Multiset {
	if threshold <= 1 {
		return m
	}
	out := New()
	for _, e := range m.entries {
		if e.count >= threshold {
			out.Add(e.key.Frames, e.count)
		}
	}
	return out
}

// WriteFolded renders the multiset in the folded-sidecar format: one line
// per key, "frame1;frame2;...;frameN count\n". Library-kind frames not
// already bracketed are wrapped in "[...]" via Frame.DisplayName, and lines
// always terminate with "\n" regardless of platform.
func (m *Multiset) WriteFolded() []byte {
	var buf bytes.Buffer
	for _, e := range m.entries {
		buf.WriteString(e.key.String())
		buf.WriteByte(' ')
		writeUint(&buf, e.count)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func writeUint(buf *bytes.Buffer, v uint64) {
	if v == 0 {
		buf.WriteByte('0')
		return
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.Write(tmp[i:])
}
