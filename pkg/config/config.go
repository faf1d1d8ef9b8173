// Package config holds the Configuration record of the flame-graph pipeline
// and its validation rules.
package config

import (
	"github.com/theSprog/FlameCrafter/pkg/flameerr"
)

// Config is the full set of recognised pipeline options. Default returns a
// fully populated value; Validate fills only an empty Colors (with "hot")
// and rejects the other zero-value dimensions.
type Config struct {
	Title    string
	Subtitle string
	Notes    string

	Width       int
	FrameHeight int
	XPad        int
	FontType    string
	FontSize    int
	FontWidth   float64

	Colors      string
	BGColor1    string
	BGColor2    string
	SearchColor string
	NameType    string
	CountName   string

	Reverse  bool
	Inverted bool

	MinWidth         float64
	MaxDepth         int
	MinHeatThreshold float64

	Interactive     bool
	WriteFoldedFile bool
}

// Default returns the recommended defaults for every field.
func Default() Config {
	return Config{
		Title:       "Flame Graph",
		Width:       1200,
		FrameHeight: 16,
		XPad:        10,
		FontType:    "Verdana",
		FontSize:    12,
		FontWidth:   0.6,
		Colors:      "hot",
		BGColor1:    "#eeeeee",
		BGColor2:    "#eeeeb0",
		SearchColor: "rgb(230,0,230)",
		NameType:    "Function:",
		CountName:   "samples",
		MinWidth:    0.1,
		Interactive: true,
	}
}

// Validate rejects non-positive dimensions or out-of-range font ratios.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return flameerr.New(flameerr.ConfigInvalid, "width must be positive")
	case c.FrameHeight <= 0:
		return flameerr.New(flameerr.ConfigInvalid, "frame_height must be positive")
	case c.XPad < 0:
		return flameerr.New(flameerr.ConfigInvalid, "xpad cannot be negative")
	case c.FontSize <= 0:
		return flameerr.New(flameerr.ConfigInvalid, "font_size must be positive")
	case c.FontWidth <= 0 || c.FontWidth > 1:
		return flameerr.New(flameerr.ConfigInvalid, "font_width must be in (0, 1]")
	case c.MinWidth < 0:
		return flameerr.New(flameerr.ConfigInvalid, "min_width cannot be negative")
	case c.MaxDepth < 0:
		return flameerr.New(flameerr.ConfigInvalid, "max_depth cannot be negative")
	case c.MinHeatThreshold < 0:
		return flameerr.New(flameerr.ConfigInvalid, "min_heat_threshold cannot be negative")
	}
	if c.Colors == "" {
		c.Colors = "hot"
	}
	return nil
}
