// Package cli wires a single cobra command exposing every field of
// config.Config as a pflag: two positional arguments (input path, output
// path) and flag-only configuration. There are no sub-commands and no
// layered file/env/flag precedence — flags bind straight onto the config.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/theSprog/FlameCrafter/pkg/config"
	"github.com/theSprog/FlameCrafter/pkg/pipeline"
)

// New builds the root command.
func New() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "flamecrafter <input-path> <output-path>",
		Short: "Render a flame graph from stack-trace samples",
		Long: "flamecrafter reads perf-script or generic stack samples from " +
			"<input-path> and writes an SVG or HTML flame graph to " +
			"<output-path>, selected by its file extension.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.Run(context.Background(), cfg, args[0], args[1], nil)
		},
	}

	registerFlags(cmd.Flags(), &cfg)
	return cmd
}

// registerFlags binds every config.Config field to a pflag, grouped by
// concern: labels, geometry/font, colour, sample-order, and filtering.
func registerFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVar(&cfg.Title, "title", cfg.Title, "graph title")
	flags.StringVar(&cfg.Subtitle, "subtitle", cfg.Subtitle, "graph subtitle")
	flags.StringVar(&cfg.Notes, "notes", cfg.Notes, "notes shown in the details line")

	flags.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	flags.IntVar(&cfg.FrameHeight, "frame-height", cfg.FrameHeight, "frame height in pixels")
	flags.IntVar(&cfg.XPad, "xpad", cfg.XPad, "left/right padding in pixels")
	flags.StringVar(&cfg.FontType, "font-type", cfg.FontType, "SVG font family")
	flags.IntVar(&cfg.FontSize, "font-size", cfg.FontSize, "SVG font size")
	flags.Float64Var(&cfg.FontWidth, "font-width", cfg.FontWidth, "average font character width ratio")

	flags.StringVar(&cfg.Colors, "colors", cfg.Colors, "colour scheme tag")
	flags.StringVar(&cfg.BGColor1, "bgcolor1", cfg.BGColor1, "background gradient colour 1")
	flags.StringVar(&cfg.BGColor2, "bgcolor2", cfg.BGColor2, "background gradient colour 2")
	flags.StringVar(&cfg.SearchColor, "search-color", cfg.SearchColor, "search highlight colour")
	flags.StringVar(&cfg.NameType, "name-type", cfg.NameType, "label preceding the hovered frame name")
	flags.StringVar(&cfg.CountName, "count-name", cfg.CountName, "unit name for sample counts")

	flags.BoolVar(&cfg.Reverse, "reverse", cfg.Reverse, "reverse each sample's frame order before folding")
	flags.BoolVar(&cfg.Inverted, "inverted", cfg.Inverted, "render icicle instead of flame orientation")

	flags.Float64Var(&cfg.MinWidth, "min-width", cfg.MinWidth, "minimum pixel width for an emitted frame")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum stack depth kept when folding (0 = unlimited)")
	flags.Float64Var(&cfg.MinHeatThreshold, "min-heat-threshold", cfg.MinHeatThreshold, "prune children below this total/parent.total ratio (0 = off)")

	flags.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "embed the interactive search/zoom script")
	flags.BoolVar(&cfg.WriteFoldedFile, "write-folded-file", cfg.WriteFoldedFile, "also write the <output>.collapse folded sidecar")
}
