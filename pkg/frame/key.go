package frame

// FramesKey is a borrowed view over a sample's frame sequence: the key of
// the folding multiset. Hashing is an order-sensitive combination of frame
// hashes, memoised on first computation.
type FramesKey struct {
	Frames []Frame

	hash     uint64
	hashedOk bool
}

// NewFramesKey wraps frames as a FramesKey. frames is not copied; it must
// remain stable (the caller owns the backing array) for the key's lifetime.
func NewFramesKey(frames []Frame) FramesKey {
	return FramesKey{Frames: frames}
}

// Hash combines each frame's cached hash in sequence order, so two keys
// with the same frames in different orders hash differently.
func (k *FramesKey) Hash() uint64 {
	if k.hashedOk {
		return k.hash
	}
	var h uint64
	for i := range k.Frames {
		fh := k.Frames[i].Hash()
		h ^= fh + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	}
	k.hash = h
	k.hashedOk = true
	return k.hash
}

// Equal reports element-wise equality of the two frame sequences.
func (k FramesKey) Equal(o FramesKey) bool {
	if len(k.Frames) != len(o.Frames) {
		return false
	}
	for i := range k.Frames {
		if !k.Frames[i].Equal(o.Frames[i]) {
			return false
		}
	}
	return true
}

// String renders the key as its frames' display names joined by ";", the
// format used by the folded sidecar file.
func (k FramesKey) String() string {
	var b []byte
	for i, f := range k.Frames {
		if i > 0 {
			b = append(b, ';')
		}
		b = append(b, f.DisplayName()...)
	}
	return string(b)
}
