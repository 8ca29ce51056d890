package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/kexpboard/internal/config"
)

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg := config.Default()
	cfg.Cols = 128 // as if loaded from the environment

	cmd := newRootCmd(&cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--rows", "16", "--update-interval", "30s", "--sink", "sim", "--logo-qr", "https://kexp.org"}))

	assert.Equal(t, 128, cfg.Cols, "unset flags keep the environment value")
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 30*time.Second, cfg.UpdateInterval)
	assert.Equal(t, "sim", cfg.Sink)
	assert.Equal(t, "https://kexp.org", cfg.LogoQR)
}

func TestInvalidConfigIsRejected(t *testing.T) {
	cfg := config.Default()
	cmd := newRootCmd(&cfg)
	cmd.SetArgs([]string{"--fps", "0"})
	cmd.SilenceErrors = true
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
}
