package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theSprog/FlameCrafter/pkg/flameerr"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cases := map[string]Config{
		"width":        withField(Default(), func(c *Config) { c.Width = 0 }),
		"frame_height": withField(Default(), func(c *Config) { c.FrameHeight = -1 }),
		"xpad":         withField(Default(), func(c *Config) { c.XPad = -1 }),
		"font_size":    withField(Default(), func(c *Config) { c.FontSize = 0 }),
		"min_width":    withField(Default(), func(c *Config) { c.MinWidth = -1 }),
		"max_depth":    withField(Default(), func(c *Config) { c.MaxDepth = -1 }),
		"heat":         withField(Default(), func(c *Config) { c.MinHeatThreshold = -1 }),
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := cfg
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, flameerr.Is(err, flameerr.ConfigInvalid))
		})
	}
}

func TestValidateRejectsOutOfRangeFontWidth(t *testing.T) {
	cfg := Default()
	cfg.FontWidth = 1.5
	require.Error(t, cfg.Validate())

	cfg.FontWidth = 0
	require.Error(t, cfg.Validate())
}

func TestValidateDefaultsEmptyColors(t *testing.T) {
	cfg := Default()
	cfg.Colors = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "hot", cfg.Colors)
}

func withField(cfg Config, mutate func(*Config)) Config {
	mutate(&cfg)
	return cfg
}
