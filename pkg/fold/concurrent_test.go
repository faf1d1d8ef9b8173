package fold

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theSprog/FlameCrafter/pkg/frame"
)

func TestConcurrentAddMergesAcrossGoroutines(t *testing.T) {
	cm := NewConcurrent()
	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				cm.Add(stack("a", "b"), 1)
			}
		}()
	}
	wg.Wait()

	drained := cm.Drain()
	require.Equal(t, 1, drained.Len())
	var total uint64
	drained.ForEach(func(_ frame.FramesKey, count uint64) { total = count })
	assert.Equal(t, uint64(workers*perWorker), total)
}

func TestConcurrentAddKeepsDistinctStacksSeparate(t *testing.T) {
	cm := NewConcurrent()
	cm.Add(stack("a"), 1)
	cm.Add(stack("b"), 1)
	drained := cm.Drain()
	assert.Equal(t, 2, drained.Len())
}

func TestAddAllMergesLocalMultisetIntoConcurrent(t *testing.T) {
	local := New()
	local.Add(stack("a", "b"), 3)
	local.Add(stack("c"), 2)

	cm := NewConcurrent()
	cm.AddAll(local)
	cm.Add(stack("a", "b"), 4)

	drained := cm.Drain()
	require.Equal(t, 2, drained.Len())
	totals := map[string]uint64{}
	drained.ForEach(func(key frame.FramesKey, count uint64) { totals[key.String()] = count })
	assert.Equal(t, uint64(7), totals["a;b"])
	assert.Equal(t, uint64(2), totals["c"])
}
