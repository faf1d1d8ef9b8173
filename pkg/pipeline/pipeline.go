// Package pipeline wires input buffering, parsing, folding, tree building
// and rendering into a single entry point that turns a raw sample file
// into a flame-graph output file.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/theSprog/FlameCrafter/pkg/config"
	"github.com/theSprog/FlameCrafter/pkg/detect"
	"github.com/theSprog/FlameCrafter/pkg/flameerr"
	"github.com/theSprog/FlameCrafter/pkg/fold"
	"github.com/theSprog/FlameCrafter/pkg/mmapbuf"
	"github.com/theSprog/FlameCrafter/pkg/parallel"
	"github.com/theSprog/FlameCrafter/pkg/parser"
	"github.com/theSprog/FlameCrafter/pkg/render"
	"github.com/theSprog/FlameCrafter/pkg/tree"
)

// Run executes the full pipeline: validate config, map the input file,
// detect its dialect, parse and fold samples, build the call tree, prune,
// render, and tear the tree down.
func Run(ctx context.Context, cfg config.Config, inputPath, outputPath string, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	suffix := strings.TrimPrefix(filepath.Ext(outputPath), ".")
	if suffix != "svg" && suffix != "html" {
		return flameerr.New(flameerr.SuffixUnknown, "unsupported output suffix: "+suffix)
	}

	buf, err := mmapbuf.Open(inputPath)
	if err != nil {
		return err
	}
	defer buf.Close()

	dialect := detect.Detect(buf.Bytes())
	log.WithField("dialect", dialect.String()).Debug("format detection complete")

	hw := runtime.GOMAXPROCS(0)
	multiset, err := collapse(ctx, buf.Bytes(), dialect, cfg, hw, log)
	if err != nil {
		return err
	}
	if multiset.Len() == 0 {
		return flameerr.New(flameerr.PipelineEmpty, "no stacks remained after folding")
	}

	if cfg.WriteFoldedFile {
		if err := os.WriteFile(outputPath+".collapse", multiset.WriteFolded(), 0o644); err != nil {
			return flameerr.Wrap(flameerr.IO, err, "write folded sidecar")
		}
	}

	root := tree.Build(multiset)
	defer tree.Destroy(root)

	if root.Total == 0 {
		return flameerr.New(flameerr.PipelineEmpty, "tree has no samples")
	}
	if cfg.MinHeatThreshold > 0 {
		root.Prune(cfg.MinHeatThreshold)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return flameerr.Wrap(flameerr.IO, err, "create output file")
	}
	defer out.Close()

	switch suffix {
	case "svg":
		err = render.NewSVG(cfg).Render(root, out)
	case "html":
		err = render.NewHTML("").Render(root, out)
	}
	if err != nil {
		return errors.Wrap(err, "render output")
	}

	log.WithFields(logrus.Fields{
		"samples":    humanize.Comma(int64(root.Total)),
		"stacks":     humanize.Comma(int64(multiset.Len())),
		"input_size": humanize.Bytes(uint64(len(buf.Bytes()))),
		"output":     outputPath,
	}).Info("flame graph generated")
	return nil
}

// collapse runs parse+fold, choosing the parallel orchestrator when the
// perf-script dialect and input size justify it.
func collapse(ctx context.Context, buf []byte, dialect detect.Dialect, cfg config.Config, hw int, log logrus.FieldLogger) (*fold.Multiset, error) {
	if dialect == detect.PerfScript && parallel.ShouldActivate(parallel.CountLines(buf), hw) {
		log.WithField("workers", hw).Debug("activating parallel orchestrator")
		return parallel.Run(ctx, buf, hw, cfg.MaxDepth, cfg.Reverse, log)
	}

	samples, _, err := parser.ParseAuto(buf, log)
	if err != nil {
		return nil, err
	}
	return fold.Fold(samples, cfg.MaxDepth, cfg.Reverse), nil
}
