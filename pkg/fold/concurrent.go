package fold

import (
	"sync"

	"github.com/theSprog/FlameCrafter/pkg/frame"
)

// shardCount is the number of independent lock domains in a
// ConcurrentMultiset. A fixed power of two keeps shard selection a cheap
// mask instead of a modulo, and is generous enough that contention between
// a handful of parallel workers stays negligible.
const shardCount = 64

type shard struct {
	mu      sync.Mutex
	buckets map[uint64][]int
	entries []entry
}

// ConcurrentMultiset is the merge target for the parallel orchestrator's
// workers: a sharded hash multiset keyed by FramesKey, with per-shard
// mutual exclusion. Increments use a locked insert on first occurrence, or
// a locked add on collision.
type ConcurrentMultiset struct {
	shards [shardCount]shard
}

// NewConcurrent returns an empty concurrent multiset.
func NewConcurrent() *ConcurrentMultiset {
	cm := &ConcurrentMultiset{}
	for i := range cm.shards {
		cm.shards[i].buckets = make(map[uint64][]int)
	}
	return cm
}

// Add merges frames with count into the multiset. Safe for concurrent use
// across goroutines operating on distinct or overlapping keys.
func (cm *ConcurrentMultiset) Add(frames []frame.Frame, count uint64) {
	if len(frames) == 0 || count == 0 {
		return
	}
	key := frame.NewFramesKey(frames)
	h := key.Hash()
	s := &cm.shards[h%shardCount]

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, idx := range s.buckets[h] {
		if s.entries[idx].key.Equal(key) {
			s.entries[idx].count += count
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], len(s.entries))
	s.entries = append(s.entries, entry{key: key, count: count})
}

// AddAll merges every entry of a worker's local multiset in one pass,
// holding each target shard's lock only while its own entries are being
// merged.
func (cm *ConcurrentMultiset) AddAll(local *Multiset) {
	for _, e := range local.entries {
		cm.Add(e.key.Frames, e.count)
	}
}

// Drain copies the concurrent multiset into a plain sequential Multiset for
// the downstream folding/tree stages, which run single-threaded.
func (cm *ConcurrentMultiset) Drain() *Multiset {
	out := New()
	for i := range cm.shards {
		s := &cm.shards[i]
		s.mu.Lock()
		for _, e := range s.entries {
			out.Add(e.key.Frames, e.count)
		}
		s.mu.Unlock()
	}
	return out
}
