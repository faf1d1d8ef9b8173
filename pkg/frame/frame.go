// Package frame defines the Frame and FramesKey types that key the folding
// multiset and the flame tree's child maps.
package frame

import "github.com/cespare/xxhash/v2"

// Kind distinguishes a resolved function symbol from a fallback library
// identifier.
type Kind uint8

const (
	KindFunction Kind = iota
	KindLibrary
)

// Frame is a (name, kind, already-bracketed) triple. The parsers copy name
// out of the input buffer, so a frame stays valid after the buffer is
// closed. Equality, ordering and hashing all cover the three fields.
type Frame struct {
	Name             string
	Kind             Kind
	AlreadyBracketed bool

	hash     uint64
	hashedOk bool
}

// Function builds a function frame.
func Function(name string) Frame {
	return Frame{Name: name, Kind: KindFunction}
}

// Library builds a library-kind frame, recording whether name already
// carries its own bracket pair (e.g. "[kernel]").
func Library(name string, alreadyBracketed bool) Frame {
	return Frame{Name: name, Kind: KindLibrary, AlreadyBracketed: alreadyBracketed}
}

// Empty reports whether the frame carries no name (a dropped/invalid
// frame).
func (f Frame) Empty() bool { return f.Name == "" }

// Equal reports element-wise equality across all three fields.
func (f Frame) Equal(o Frame) bool {
	return f.Name == o.Name && f.Kind == o.Kind && f.AlreadyBracketed == o.AlreadyBracketed
}

// Less provides a deterministic total ordering for stable child layout:
// name, then kind, then bracket flag.
func (f Frame) Less(o Frame) bool {
	if f.Name != o.Name {
		return f.Name < o.Name
	}
	if f.Kind != o.Kind {
		return f.Kind < o.Kind
	}
	return !f.AlreadyBracketed && o.AlreadyBracketed
}

// Hash returns a cached hash of the frame, computed at most once (the
// cache is a value-receiver field so the first caller's computation is
// visible to that copy only — callers that want the memo to stick across
// copies should hold frames by pointer, as FramesKey does).
func (f *Frame) Hash() uint64 {
	if f.hashedOk {
		return f.hash
	}
	h := xxhash.New()
	_, _ = h.WriteString(f.Name)
	var kindByte [2]byte
	kindByte[0] = byte(f.Kind)
	if f.AlreadyBracketed {
		kindByte[1] = 1
	}
	_, _ = h.Write(kindByte[:])
	f.hash = h.Sum64()
	f.hashedOk = true
	return f.hash
}

// DisplayName renders the frame the way the folded sidecar and SVG
// tooltips expect: library-kind frames not already bracketed are wrapped
// in "[...]".
func (f Frame) DisplayName() string {
	if f.Kind == KindLibrary && !f.AlreadyBracketed {
		return "[" + f.Name + "]"
	}
	return f.Name
}
