package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "non-positive swipe threshold",
			mutate:  func(c *Config) { c.Presentation.SwipeThresholdPx = 0 },
			wantErr: "presentation.swipe_threshold_px must be positive",
		},
		{
			name:    "non-positive cell width",
			mutate:  func(c *Config) { c.Presentation.CellWidthPx = -2 },
			wantErr: "presentation.cell_width_px must be positive",
		},
		{
			name:    "unknown export format",
			mutate:  func(c *Config) { c.Export.Format = "pdf" },
			wantErr: "export.format must be one of: html, markdown",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be one of: console, json",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.Palette.Accent = "red" },
			wantErr: "appearance.palette.accent must be a hex color",
		},
		{
			name:    "file log without dir",
			mutate:  func(c *Config) { c.Logging.LogDir = "" },
			wantErr: "logging.log_dir is required",
		},
		{
			name:    "addr without port",
			mutate:  func(c *Config) { c.Server.Addr = "localhost" },
			wantErr: "server.addr must be host:port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateXDG(t)
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaProvider_CoversEveryDefaultKey(t *testing.T) {
	isolateXDG(t)
	keys := NewSchemaProvider().GetSchema()

	names := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		names[k.Key] = true
	}

	for _, want := range []string{
		"presentation.autoplay_interval_ms",
		"presentation.language",
		"deck.path",
		"logging.level",
		"appearance.palette.accent",
		"appearance.high_contrast",
		"export.format",
		"server.addr",
	} {
		assert.True(t, names[want], want)
	}
}
