package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10*time.Second, cfg.UpdateInterval)
	assert.Equal(t, 64, cfg.Cols)
	assert.Equal(t, 32, cfg.Rows)
	assert.Equal(t, 1.6, cfg.ScrollThreshold)
	assert.Equal(t, 100*time.Millisecond, cfg.FrameInterval())
	assert.NoError(t, cfg.Validate())
}

func TestOverrides(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		EnvUpdateInterval:  "15",
		EnvMatrixCols:      "128",
		EnvBrightness:      " 40 ",
		EnvFPS:             "20",
		EnvScrollThreshold: "2.5",
		EnvSink:            "sim",
		EnvListen:          ":8080",
		EnvStation:         "",
	}))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.UpdateInterval)
	assert.Equal(t, 128, cfg.Cols)
	assert.Equal(t, 40, cfg.Brightness)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameInterval())
	assert.Equal(t, 2.5, cfg.ScrollThreshold)
	assert.Equal(t, "sim", cfg.Sink)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "KEXP 90.3 FM", cfg.Station, "blank values keep the default")

	cfg, err = fromLookup(lookupFrom(map[string]string{EnvUpdateInterval: "1m30s"}))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.UpdateInterval)
}

func TestParseErrorsNameTheVariable(t *testing.T) {
	_, err := fromLookup(lookupFrom(map[string]string{
		EnvMatrixRows:     "tall",
		EnvUpdateInterval: "soon",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMatrixRows)
	assert.Contains(t, err.Error(), EnvUpdateInterval)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"negative rows", func(c *Config) { c.Rows = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero threshold", func(c *Config) { c.ScrollThreshold = 0 }},
		{"zero airbreak ticks", func(c *Config) { c.AirbreakTicks = 0 }},
		{"brightness", func(c *Config) { c.Brightness = 101 }},
		{"interval", func(c *Config) { c.UpdateInterval = 0 }},
		{"sink", func(c *Config) { c.Sink = "hdmi" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
