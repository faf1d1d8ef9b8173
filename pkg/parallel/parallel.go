// Package parallel implements an optional block-parallel replacement for
// the sequential scan->detect->parse->fold pipeline stages. It activates
// only for perf-script inputs above a line-count threshold and merges
// worker output into a concurrent multiset before handing control back to
// the sequential tree-building stage.
package parallel

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/theSprog/FlameCrafter/pkg/fold"
	"github.com/theSprog/FlameCrafter/pkg/parser"
	"github.com/theSprog/FlameCrafter/pkg/scanner"
)

// MinLinesPerThread bounds how finely the input is split: a worker is
// never assigned less than this many lines, mirroring the original's
// MIN_LINES_PER_THREAD constant.
const MinLinesPerThread = 10000

// CountLines counts '\n'-delimited lines in buf without building the full
// offset index, for the cheap activation-threshold check the orchestrator
// itself doesn't need paid twice.
func CountLines(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b == '\n' {
			n++
		}
	}
	if len(buf) > 0 && buf[len(buf)-1] != '\n' {
		n++
	}
	return n
}

// ShouldActivate reports whether the line count justifies the parallel
// path: activates at or above hwParallelism * MinLinesPerThread lines.
func ShouldActivate(totalLines, hwParallelism int) bool {
	if hwParallelism < 1 {
		hwParallelism = 1
	}
	return totalLines >= hwParallelism*MinLinesPerThread
}

// workerCount picks the number of blocks: capped by hardware parallelism,
// and never more than the data can usefully fill at MinLinesPerThread
// lines apiece.
func workerCount(totalLines, hwParallelism int) int {
	if hwParallelism < 1 {
		hwParallelism = 1
	}
	byData := totalLines / MinLinesPerThread
	n := hwParallelism
	if byData < n {
		n = byData
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Run partitions buf's lines into contiguous blocks, parses each block
// independently (applying the boundary-seek rule on every block but the
// first), and merges the results into a single sequential multiset.
// hwParallelism is typically runtime.GOMAXPROCS(0); log may be nil.
func Run(ctx context.Context, buf []byte, hwParallelism int, maxDepth int, reverse bool, log logrus.FieldLogger) (*fold.Multiset, error) {
	idx := scanner.NewIndexed(buf)
	numBlocks := workerCount(idx.Len(), hwParallelism)

	merged := fold.NewConcurrent()

	g, gctx := errgroup.WithContext(ctx)
	for b := 0; b < numBlocks; b++ {
		block := b
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start, end := idx.BlockRange(block, numBlocks)
			if block > 0 {
				start = seekToBoundary(idx, start, end)
			}
			isLast := block == numBlocks-1
			samples := parser.ParsePerfScriptBlock(idx, start, end, isLast)

			local := fold.Fold(samples, maxDepth, reverse)
			merged.AddAll(local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if log != nil {
		log.WithField("workers", numBlocks).Debug("parallel orchestrator merged block results")
	}

	return merged.Drain(), nil
}

// seekToBoundary advances a non-first block's start forward until it
// reaches a blank line or a header line, so it never begins mid-sample. If
// no such line exists before end, the block contributes nothing
// (start == end).
func seekToBoundary(idx *scanner.Indexed, start, end int) int {
	for start < end {
		if parser.IsHeaderOrBlank(idx.Line(start)) {
			return start
		}
		start++
	}
	return start
}
